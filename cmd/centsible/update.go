package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/currency"
)

func updateCmd() *cobra.Command {
	var (
		category     string
		currencyCode string
	)

	cmd := &cobra.Command{
		Use:   "update <id> <amount> [note...]",
		Short: "Edit an entry",
		Long:  `Replace an entry's amount, category, note and currency. The entry's id and date never change.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			note := strings.Join(args[2:], " ")

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			entry, err := a.ledger.UpdateEntry(ctx, args[0], amount, category, note, currencyCode)
			if errors.Is(err, common.ErrNotFound) {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No entry with id %s.", args[0])))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated %s: %s on %s (%s)",
				shortID(entry.ID), currency.Format(entry.Amount, entry.Currency), entry.Date, entry.Category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "spend category (default Uncategorized)")
	cmd.Flags().StringVar(&currencyCode, "currency", "", "currency code (default from settings)")

	return cmd
}
