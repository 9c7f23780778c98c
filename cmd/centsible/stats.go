package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/access"
	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/currency"
	"github.com/centsible/centsible/internal/stats"
)

func statsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Spending statistics",
		Long:  `Reduce the visible entries of a period (week or month) into totals, category rankings and extreme days.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			var start string
			switch period {
			case "week":
				start = now.AddDate(0, 0, -6).Format("2006-01-02")
			case "month":
				start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
			default:
				return fmt.Errorf("invalid period %q, expected week or month", period)
			}
			end := now.Format("2006-01-02")

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.refreshRecurring(ctx)

			sub := a.settings.Subscription(ctx)
			cfg := a.settings.Settings(ctx)

			entries := a.ledger.EntriesForRange(ctx, start, end)
			visible, locked := access.FilterEntries(entries, sub, cfg.FreeHistoryDays, now)

			result := stats.Calculate(visible)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Stats %s … %s", start, end)))
			fmt.Printf("Total spend:      %s\n", currency.Format(result.TotalSpend, cfg.DefaultCurrency))
			fmt.Printf("Spend days:       %d\n", result.SpendDays)
			fmt.Printf("Avg per spend day: %s\n", currency.Format(result.AverageSpendPerSpendDay, cfg.DefaultCurrency))

			if result.HighestSpendDay != nil {
				fmt.Printf("Highest day:      %s (%s)\n", result.HighestSpendDay.Date,
					currency.Format(result.HighestSpendDay.Total, cfg.DefaultCurrency))
			}
			if result.LowestSpendDay != nil {
				fmt.Printf("Lowest day:       %s (%s)\n", result.LowestSpendDay.Date,
					currency.Format(result.LowestSpendDay.Total, cfg.DefaultCurrency))
			}

			if len(result.TopCategories) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nTop categories"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, c := range result.TopCategories {
					fmt.Fprintf(w, "%s\t%s\n", c.Category, currency.Format(c.Total, cfg.DefaultCurrency))
				}
				_ = w.Flush()
			}

			if len(locked) > 0 {
				fmt.Println(cli.LockedStyle.Render(fmt.Sprintf(
					"\n%d day(s) in this period are outside your free history window and were not counted.", len(locked))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "week", "statistics period (week, month)")

	return cmd
}
