package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanLimbu/taskphotos/internal/service"
)

func newReportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the completion rate of the tasks created this month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := service.NewReport(a.logger, a.store.Report, nil).Monthly(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n\tTotal: %d\n\tFinished: %d\n\tRate: %d%%\n",
				res.Start.Format("2006-01-02"),
				res.End.Format("2006-01-02"),
				res.Total,
				res.Finished,
				res.Rate)

			return nil
		},
	}
}
