package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/currency"
	"github.com/centsible/centsible/internal/model"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring templates",
		Long:  `Create, list, pause, resume and delete templates that spawn spend entries on a schedule.`,
	}

	cmd.AddCommand(recurringAddCmd())
	cmd.AddCommand(recurringListCmd())
	cmd.AddCommand(recurringSetActiveCmd("pause", false))
	cmd.AddCommand(recurringSetActiveCmd("resume", true))
	cmd.AddCommand(recurringDeleteCmd())
	cmd.AddCommand(recurringRunCmd())

	return cmd
}

func recurringAddCmd() *cobra.Command {
	var (
		frequency    string
		startDate    string
		endDate      string
		category     string
		currencyCode string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> [note...]",
		Short: "Create a recurring template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			start, err := resolveDay(startDate)
			if err != nil {
				return err
			}

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			tpl, err := a.templates.Add(ctx, model.RecurringEntry{
				Amount:    amount,
				Category:  category,
				Currency:  currencyCode,
				Note:      strings.Join(args[1:], " "),
				Frequency: model.Frequency(frequency),
				StartDate: start,
				EndDate:   endDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recurring %s of %s starting %s (%s)",
				tpl.Frequency, currency.Format(tpl.Amount, tpl.Currency), tpl.StartDate, shortID(tpl.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&frequency, "frequency", "f", "monthly", "cadence (weekly, biweekly, monthly)")
	cmd.Flags().StringVar(&startDate, "start", "", "first occurrence day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&endDate, "end", "", "last possible occurrence day (YYYY-MM-DD, default open-ended)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "spend category (default Uncategorized)")
	cmd.Flags().StringVar(&currencyCode, "currency", "", "currency code (default from settings)")

	return cmd
}

func recurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			templates := a.templates.Templates(ctx)
			if len(templates) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring templates. Use 'centsible recurring add' to create one."))
				return nil
			}

			today := model.FormatDay(time.Now())
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAMOUNT\tFREQ\tSTART\tEND\tLAST\tSTATE")
			for _, tpl := range templates {
				end := tpl.EndDate
				if end == "" {
					end = "-"
				}
				last := tpl.LastGeneratedDate
				if last == "" {
					last = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(tpl.ID), currency.Format(tpl.Amount, tpl.Currency), tpl.Frequency,
					tpl.StartDate, end, last, tpl.StateOn(today))
			}
			return w.Flush()
		},
	}
}

func recurringSetActiveCmd(verb string, active bool) *cobra.Command {
	short := "Pause a recurring template"
	if active {
		short = "Resume a paused template"
	}

	return &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			ok, err := a.templates.SetActive(ctx, args[0], active)
			if err != nil {
				return fmt.Errorf("failed to %s template: %w", verb, err)
			}
			if !ok {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No template with id %s.", args[0])))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Template " + verb + "d"))
			return nil
		},
	}
}

func recurringDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring template",
		Long:  `Delete a template. Entries it already spawned stay in the ledger.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			ok, err := a.templates.Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}
			if !ok {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No template with id %s.", args[0])))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Template deleted"))
			return nil
		},
	}
}

func recurringRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Backfill today's recurring occurrences now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			generated, err := a.engine.GenerateForToday(ctx)
			if err != nil {
				return fmt.Errorf("recurring generation failed: %w", err)
			}

			if generated == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to generate — already up to date."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Generated %d entries", generated)))
			return nil
		},
	}
}
