package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func syncCMD() *cobra.Command {
	var sync = &cobra.Command{
		Use:   "sync",
		Short: "Push or pull the library snapshot to the hosted backend",
	}

	sync.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Upload the local library",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.sync.Push(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d categories and %d bookmarks for %s at %s\n",
				out.Categories, out.Bookmarks, out.UserID, out.PushedAt.Format(time.RFC3339))
			return nil
		},
	})

	sync.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Merge the remote snapshot into the local library",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.sync.Pull(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot of %s from %s\n", out.UserID, out.UpdatedAt.Format(time.RFC3339))
			printImportResult(cmd.OutOrStdout(), out.Result)
			return nil
		},
	})

	return sync
}
