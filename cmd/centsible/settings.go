package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/settings"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change configuration",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := a.settings.Settings(ctx)
			fmt.Printf("Default currency:   %s\n", cfg.DefaultCurrency)
			fmt.Printf("Free history days:  %d\n", cfg.FreeHistoryDays)
			fmt.Printf("Reminder time:      %s\n", cfg.ReminderTime)
			fmt.Printf("Notifications:      %t\n", cfg.NotificationsEnabled)
			fmt.Printf("Theme:              %s\n", cfg.ThemeMode)
			fmt.Printf("Onboarding done:    %t\n", cfg.OnboardingCompleted)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		currencyCode    string
		freeHistoryDays int
		reminderTime    string
		themeMode       string
		notifications   bool
		onboardingDone  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long:  `Update one or more settings. Flags you do not pass keep their stored value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			// Only flags the user actually set become part of the patch.
			var patch settings.SettingsPatch
			if cmd.Flags().Changed("currency") {
				patch.DefaultCurrency = &currencyCode
			}
			if cmd.Flags().Changed("free-history-days") {
				patch.FreeHistoryDays = &freeHistoryDays
			}
			if cmd.Flags().Changed("reminder") {
				patch.ReminderTime = &reminderTime
			}
			if cmd.Flags().Changed("theme") {
				patch.ThemeMode = &themeMode
			}
			if cmd.Flags().Changed("notifications") {
				patch.NotificationsEnabled = &notifications
			}
			if cmd.Flags().Changed("onboarding-done") {
				patch.OnboardingCompleted = &onboardingDone
			}

			if _, err := a.settings.UpdateSettings(ctx, patch); err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&currencyCode, "currency", "", "default currency code")
	cmd.Flags().IntVar(&freeHistoryDays, "free-history-days", 0, "days of history visible without premium")
	cmd.Flags().StringVar(&reminderTime, "reminder", "", "daily reminder time (HH:MM)")
	cmd.Flags().StringVar(&themeMode, "theme", "", "theme mode (light, dark, system)")
	cmd.Flags().BoolVar(&notifications, "notifications", false, "enable notifications")
	cmd.Flags().BoolVar(&onboardingDone, "onboarding-done", false, "mark onboarding as completed")

	return cmd
}
