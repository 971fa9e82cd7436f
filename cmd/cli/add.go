package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanLimbu/taskphotos/cmd/internal"
	internaldomain "github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/media"
	"github.com/sanLimbu/taskphotos/internal/service"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	var (
		draft   internaldomain.Draft
		gallery string
		camera  string
		user    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task, uploading photos picked from the gallery and camera directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			blobs, err := internal.NewBlobStore(a.conf)
			if err != nil {
				return err
			}

			opts, closeOpts, err := internal.NewSubmissionOptions(ctx, a.conf)
			if err != nil {
				return err
			}
			defer closeOpts()

			sub := service.NewSubmission(a.logger,
				a.store.Repo,
				blobs,
				internal.NewImageReader(a.conf),
				media.NewDirectoryPicker(gallery, camera),
				opts...)

			for _, src := range []struct {
				dir    string
				source internaldomain.ImageSource
			}{
				{gallery, internaldomain.ImageSourceGallery},
				{camera, internaldomain.ImageSourceCamera},
			} {
				if src.dir == "" {
					continue
				}

				if err := sub.CollectImages(ctx, &draft, src.source); err != nil {
					return err
				}
			}

			if user != "" {
				ctx = internaldomain.WithUser(ctx, user)
			}

			task, err := sub.SaveTask(ctx, &draft)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "New Task\n\tID: %s\n", task.ID)
			fmt.Fprintf(out, "\tTitle: %s\n", task.Title)
			fmt.Fprintf(out, "\tPriority: %s\n", task.Priority)
			fmt.Fprintf(out, "\tStatus: %s\n", task.Status)

			for _, photo := range task.Photos {
				fmt.Fprintf(out, "\tPhoto: %s\n", photo)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&draft.Priority, "priority", "Low", "Low, Medium or High")
	cmd.Flags().StringVar(&draft.ID, "draft-id", "", "Identifier rejecting concurrent saves of the same draft")
	cmd.Flags().StringVar(&gallery, "gallery", "", "Directory the most recent photos are picked from")
	cmd.Flags().StringVar(&camera, "camera", "", "Directory the latest photo is picked from")
	cmd.Flags().StringVar(&user, "user", "", "User creating the task")

	return cmd
}
