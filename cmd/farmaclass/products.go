package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/farmaon/farmaclass/internal/cli"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect the stored catalog",
	}
	cmd.AddCommand(productsStatsCmd())
	cmd.AddCommand(productsHistoryCmd())
	return cmd
}

func productsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <product-id>",
		Short: "Show applied classification changes for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product ID %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close database", "error", closeErr)
				}
			}()

			product, err := store.GetProduct(ctx, id)
			if err != nil {
				return err
			}
			entries, err := store.History(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("#%d %s", product.ID, product.Name)))
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No classification changes recorded."))
				return nil
			}
			for _, e := range entries {
				fmt.Printf("  %s  %s/%s → %s/%s  (%.2f, %s)\n",
					e.AppliedAt,
					orDash(e.OldCategory), orDash(e.OldSubcategory),
					e.Category, orDash(e.Subcategory),
					e.Confidence, orDash(e.RuleKey))
			}
			return nil
		},
	}
}

func productsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Per-category product counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close database", "error", closeErr)
				}
			}()

			counts, err := store.CategoryCounts(ctx)
			if err != nil {
				return err
			}

			categories := make([]string, 0, len(counts))
			total := 0
			for category, n := range counts {
				total += n
				if category != "" {
					categories = append(categories, category)
				}
			}
			sort.Strings(categories)

			fmt.Println(cli.TitleStyle.Render("Catalog stats"))
			for _, category := range categories {
				fmt.Printf("  %-30s %5d\n", category, counts[category])
			}
			if unclassified := counts[""]; unclassified > 0 {
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("  %-30s %5d", "(unclassified)", unclassified)))
			}
			fmt.Printf("%s %d\n", cli.BoldStyle.Render("Total:"), total)
			return nil
		},
	}
}
