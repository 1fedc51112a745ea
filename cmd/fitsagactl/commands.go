package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"fitsaga/internal/errors"
	"fitsaga/internal/util"

	"github.com/spf13/cobra"
)

func newResetCreditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-credits",
		Short: "Refill every client's credits from their subscription plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsecases(cmd.Context(), func(ctx context.Context, uc usecases) error {
				out, err := uc.Credits.ResetCredits(ctx)
				if err != nil {
					return errors.Wrap(err, "reset credits")
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Result", "Processed", "Skipped"},
					[][]string{{out.Message, strconv.Itoa(out.Processed), strconv.Itoa(out.Skipped)}},
					2, 3,
				))
				fmt.Fprintf(cmd.ErrOrStderr(), "refilled %s\n", util.Plural(out.Processed, "client", "clients"))
				return nil
			})
		},
	}
}

func newImportVideosCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-videos",
		Short: "Import exercise video metadata from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return errors.Wrapf(err, "open %s", file)
			}
			defer f.Close()

			size := "unknown"
			if info, statErr := f.Stat(); statErr == nil {
				size = util.FormatBytes(info.Size())
			}

			return withUsecases(cmd.Context(), func(ctx context.Context, uc usecases) error {
				out, err := uc.Media.ImportVideos(ctx, f)
				if err != nil {
					return errors.Wrap(err, "import videos")
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"File", "Size", "Imported", "Skipped"},
					[][]string{{file, size, strconv.Itoa(out.Imported), strconv.Itoa(out.Skipped)}},
					2, 3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with a header row")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSASURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sas-url <blob>",
		Short: "Print a read-only URL for a video blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUsecases(cmd.Context(), func(ctx context.Context, uc usecases) error {
				out, err := uc.Media.SignedVideoURL(ctx, args[0])
				if err != nil {
					return errors.Wrap(err, "sign video url")
				}

				fmt.Fprintln(cmd.OutOrStdout(), out.URL)
				fmt.Fprintf(cmd.ErrOrStderr(), "expires in %s\n", util.FormatExpiry(out.ExpiresIn))
				return nil
			})
		},
	}
}
