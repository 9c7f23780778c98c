package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger",
		Long:  `Export every entry as CSV, or the full ledger (entries, settings, custom categories) as a JSON backup. Export never modifies the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			entries := a.ledger.AllEntries(ctx)

			switch format {
			case "csv":
				if output == "" {
					// Plain write when streaming to stdout; a progress bar
					// would interleave with the data.
					if err := export.WriteCSV(out, entries); err != nil {
						return err
					}
					return nil
				}

				bar := progressbar.Default(int64(len(entries)), "exporting")
				w := csv.NewWriter(out)
				if err := w.Write(export.CSVHeader); err != nil {
					return fmt.Errorf("failed to write CSV header: %w", err)
				}
				for _, e := range entries {
					if err := w.Write(export.CSVRecord(e)); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
					_ = bar.Add(1)
				}
				w.Flush()
				if err := w.Error(); err != nil {
					return fmt.Errorf("failed to flush CSV: %w", err)
				}

			case "json":
				settings := a.settings.Settings(ctx)
				categories := a.ledger.CustomCategories(ctx)
				if err := export.WriteBackup(out, entries, settings, categories, time.Now()); err != nil {
					return err
				}

			default:
				return fmt.Errorf("invalid format %q, expected csv or json", format)
			}

			if output != "" {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d entries to %s", len(entries), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format (csv, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
