package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/currency"
)

func addCmd() *cobra.Command {
	var (
		date         string
		category     string
		currencyCode string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> [note...]",
		Short: "Record a spend",
		Long:  `Record a spend entry for a day (today unless --date is given).`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			day, err := resolveDay(date)
			if err != nil {
				return err
			}
			note := strings.Join(args[1:], " ")

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			entry, err := a.ledger.AddEntry(ctx, day, amount, category, note, currencyCode)
			if err != nil {
				return fmt.Errorf("failed to add entry: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded %s on %s (%s)",
				currency.Format(entry.Amount, entry.Currency), entry.Date, entry.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to record the spend on (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "spend category (default Uncategorized)")
	cmd.Flags().StringVar(&currencyCode, "currency", "", "currency code (default from settings)")

	return cmd
}
