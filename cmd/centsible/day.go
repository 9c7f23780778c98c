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
)

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show one day's entries",
		Long:  `Display all entries recorded on a day (today unless a date is given), with the day total.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			day, err := resolveDay(raw)
			if err != nil {
				return err
			}

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.refreshRecurring(ctx)

			now := time.Now()
			sub := a.settings.Subscription(ctx)
			cfg := a.settings.Settings(ctx)

			if !access.CanViewDate(day, sub, cfg.FreeHistoryDays, now) {
				fmt.Println(cli.LockedStyle.Render(fmt.Sprintf(
					"%s is outside your free history window (%d days). Upgrade to view older days.",
					day, cfg.FreeHistoryDays)))
				return nil
			}

			data := a.ledger.DayData(ctx, day)
			if !data.HasSpend {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No spend recorded on %s.", day)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(day))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, e := range data.Entries {
				note := e.Note
				if note == "" {
					note = cli.SubtleStyle.Render("(no note)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					shortID(e.ID), currency.Format(e.Amount, e.Currency), e.Category, note)
			}
			_ = w.Flush()

			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Total: %s across %d entries",
				currency.Format(data.TotalAmount, cfg.DefaultCurrency), len(data.Entries))))
			return nil
		},
	}
}
