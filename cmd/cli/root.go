package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/cmd/internal"
	internaldomain "github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
)

type globalFlags struct {
	env   string
	trace bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Submit photo-documented tasks and inspect monthly completion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.env, "env", "", "Environment Variables filename")
	cmd.PersistentFlags().BoolVar(&flags.trace, "trace", false, "Print OpenTelemetry spans to stderr")

	cmd.AddCommand(newAddCmd(&flags), newReportCmd(&flags))

	return cmd
}

// app holds the dependencies shared by the subcommands.
type app struct {
	logger *zap.Logger
	conf   *envvar.Configuration
	store  *internal.TaskStore
	flush  func() error
}

func newApp(ctx context.Context, flags *globalFlags) (*app, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewDevelopment")
	}

	if err := envvar.Load(flags.env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	flush := func() error { return nil }

	if flags.trace {
		if flush, err = internal.NewStdoutTracer(os.Stderr, "taskctl"); err != nil {
			return nil, err
		}
	}

	store, err := internal.NewTaskStore(ctx, conf, logger)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewTaskStore")
	}

	return &app{
		logger: logger,
		conf:   conf,
		store:  store,
		flush:  flush,
	}, nil
}

func (a *app) Close() {
	a.store.Close()

	_ = a.flush()
	_ = a.logger.Sync()
}
