package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Convert legacy daily logs now",
		Long: `Convert the legacy single-record-per-day log into spend entries.
This normally happens automatically before the first read; the command
just forces it eagerly. Running it again is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.ledger.EnsureMigrated(ctx)

			entries := a.ledger.AllEntries(ctx)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Migration complete — ledger holds %d entries", len(entries))))
			return nil
		},
	}
}
