package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/access"
	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/settings"
)

func subscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Show or set the entitlement record",
		Long:  `Inspect the premium entitlement, or write it the way the purchase flow would.`,
	}

	cmd.AddCommand(subscriptionShowCmd())
	cmd.AddCommand(subscriptionSetCmd())

	return cmd
}

func subscriptionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current entitlement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			sub := a.settings.Subscription(ctx)
			fmt.Printf("Plan:     %s\n", sub.Plan)
			fmt.Printf("Active:   %t\n", sub.IsActive)
			if sub.ExpiresAt != nil {
				fmt.Printf("Expires:  %s\n", sub.ExpiresAt.Format(time.RFC3339))
			} else {
				fmt.Println("Expires:  never")
			}
			if sub.Source != "" {
				fmt.Printf("Source:   %s\n", sub.Source)
			}

			if access.IsPremium(sub, time.Now()) {
				fmt.Println(cli.SuccessStyle.Render("Premium: full history is visible."))
			} else {
				fmt.Println(cli.InfoStyle.Render("Free tier: history is limited to the free window."))
			}
			return nil
		},
	}
}

func subscriptionSetCmd() *cobra.Command {
	var (
		plan      string
		active    bool
		expiresAt string
		source    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Write the entitlement record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p := model.Plan(plan)
			if !p.Valid() {
				return fmt.Errorf("%w: %q", common.ErrInvalidPlan, plan)
			}

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			patch := settings.SubscriptionPatch{Plan: &p, IsActive: &active}
			if cmd.Flags().Changed("expires") {
				if expiresAt == "" {
					patch.ClearExpiresAt = true
				} else {
					t, err := time.Parse(time.RFC3339, expiresAt)
					if err != nil {
						return common.NewUserError(fmt.Sprintf("%q is not an RFC3339 timestamp", expiresAt), err)
					}
					patch.ExpiresAt = &t
				}
			}
			if cmd.Flags().Changed("source") {
				patch.Source = &source
			}

			sub, err := a.settings.UpdateSubscription(ctx, patch)
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Subscription set to %s (active=%t)", sub.Plan, sub.IsActive)))
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "free", "plan (free, monthly, yearly, lifetime)")
	cmd.Flags().BoolVar(&active, "active", true, "whether the entitlement is active")
	cmd.Flags().StringVar(&expiresAt, "expires", "", "expiry instant (RFC3339, empty clears it)")
	cmd.Flags().StringVar(&source, "source", "", "store identifier the purchase came from")

	return cmd
}
