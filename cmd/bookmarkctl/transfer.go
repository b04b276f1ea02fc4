package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bookmark-manager/internal/bookmark"
)

const (
	formatJSON = "json"
	formatHTML = "html"
)

func exportCMD() *cobra.Command {
	var format, out string

	var export = &cobra.Command{
		Use:   "export",
		Short: "Export the library as JSON or Netscape bookmark HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case formatJSON:
				data, err := a.library.Export(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			case formatHTML:
				return a.library.ExportHTML(ctx, w)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	export.Flags().StringVarP(&format, "format", "f", formatJSON, "json or html")
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return export
}

func importCMD() *cobra.Command {
	var format string

	var imp = &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON export or Netscape bookmark HTML file into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var res bookmark.ImportResult
			switch format {
			case formatJSON:
				var data bookmark.ExportData
				if err := json.NewDecoder(f).Decode(&data); err != nil {
					return fmt.Errorf("decode %s: %w", args[0], err)
				}
				res, err = a.library.Import(ctx, data)
			case formatHTML:
				res, err = a.library.ImportHTML(ctx, f)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}
			printImportResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	imp.Flags().StringVarP(&format, "format", "f", formatJSON, "json or html")

	return imp
}

func printImportResult(w io.Writer, res bookmark.ImportResult) {
	fmt.Fprintf(w, "categories created:     %d\n", res.CategoriesCreated)
	fmt.Fprintf(w, "sub-categories created: %d\n", res.SubCategoriesCreated)
	fmt.Fprintf(w, "bookmarks created:      %d\n", res.BookmarksCreated)
	fmt.Fprintf(w, "bookmarks skipped:      %d\n", res.BookmarksSkipped)
}
