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

func listCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in a date range",
		Long:  `List all visible entries between --from and --to (default: the last 7 days). Days outside the free history window show as locked placeholders.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			a.refreshRecurring(ctx)

			now := time.Now()
			if to == "" {
				to = now.Format("2006-01-02")
			}
			if from == "" {
				from = now.AddDate(0, 0, -7).Format("2006-01-02")
			}
			start, err := resolveDay(from)
			if err != nil {
				return err
			}
			end, err := resolveDay(to)
			if err != nil {
				return err
			}

			sub := a.settings.Subscription(ctx)
			cfg := a.settings.Settings(ctx)

			entries := a.ledger.EntriesForRange(ctx, start, end)
			visible, locked := access.FilterEntries(entries, sub, cfg.FreeHistoryDays, now)

			if len(visible) == 0 && len(locked) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No entries between %s and %s.", start, end)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s … %s", start, end)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, e := range visible {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date, shortID(e.ID), currency.Format(e.Amount, e.Currency), e.Category, e.Note)
			}
			_ = w.Flush()

			for _, day := range locked {
				fmt.Println(cli.LockedStyle.Render(fmt.Sprintf("%s  🔒 locked (outside free history window)", day)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD)")

	return cmd
}
