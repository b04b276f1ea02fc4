package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func enhanceCMD() *cobra.Command {
	var id string

	var enhance = &cobra.Command{
		Use:   "enhance",
		Short: "Fill missing descriptions and cover images",
		Long:  "Without --id every bookmark missing a description or cover image is processed, rate limited by enhance.rate_per_sec.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if id != "" {
				out, err := a.library.EnhanceBookmark(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s updated=%t\n", out.Bookmark.ID, out.Updated)
				return nil
			}

			sum, err := a.library.EnhancePending(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d bookmarks: %d updated, %d failed\n", sum.Total, sum.Updated, sum.Failed)
			return nil
		},
	}
	enhance.Flags().StringVar(&id, "id", "", "enhance a single bookmark")

	return enhance
}
