package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spend categories",
		Long:  `List the selectable categories and add or delete custom ones. Built-in categories cannot be removed.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range model.BuiltinCategories {
				fmt.Fprintf(w, "%s\t%s\n", name, cli.SubtleStyle.Render("built-in"))
			}
			for _, c := range a.ledger.CustomCategories(ctx) {
				fmt.Fprintf(w, "%s\t%s\n", c.Name, shortID(c.ID))
			}
			return w.Flush()
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			category, err := a.ledger.AddCustomCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added category %q (%s)", category.Name, shortID(category.ID))))
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long:  `Delete a custom category. Entries keep their category label.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := initApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			removed, err := a.ledger.DeleteCustomCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			if !removed {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No custom category with id %s.", args[0])))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Category deleted"))
			return nil
		},
	}
}
