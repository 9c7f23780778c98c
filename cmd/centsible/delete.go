package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.ledger.DeleteEntry(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}
			if !removed {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No entry with id %s.", args[0])))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Entry deleted"))
			return nil
		},
	}
}
