package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/farmaon/farmaclass/internal/batch"
	"github.com/farmaon/farmaclass/internal/classifier"
	"github.com/farmaon/farmaclass/internal/cli"
	"github.com/farmaon/farmaclass/internal/config"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/reconcile"
	"github.com/farmaon/farmaclass/internal/storage"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// classifyStored runs the full database flow: classify, reconcile
// against the stored state, display the changeset and optionally
// apply the confident part of it.
func classifyStored(
	cmd *cobra.Command,
	store *storage.SQLiteStorage,
	engine *classifier.Engine,
	registry *taxonomy.Registry,
	cfg config.Classification,
	products []model.Product,
	apply bool,
	showResults bool,
) error {
	ctx := cmd.Context()

	if len(products) == 0 {
		fmt.Println("No products in the database. Run 'farmaclass import' first.")
		return nil
	}

	bar := progressbar.Default(int64(len(products)), "classifying")
	runner := batch.NewRunner(engine,
		batch.WithWorkers(cfg.Workers),
		batch.WithProgress(func() { _ = bar.Add(1) }))

	report, err := runner.Run(ctx, products)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	fmt.Print(cli.RenderReport(report, registry))
	if showResults {
		fmt.Print(cli.RenderResults(report.Results))
	}

	current := make(map[int64]model.CategoryPair, len(products))
	for _, p := range products {
		current[p.ID] = model.CategoryPair{
			Category:    p.Category,
			Subcategory: p.Subcategory,
		}
	}

	changes := reconcile.Diff(report.Results, current, cfg.ReviewThreshold)
	fmt.Print(cli.RenderChanges(changes))

	if !apply {
		if len(changes) > 0 {
			fmt.Println(cli.SubtleStyle.Render("Dry run. Re-run with --apply to persist the confident changes."))
		}
		return nil
	}

	applicable, review := reconcile.Applicable(changes)
	if len(review) > 0 {
		fmt.Println(cli.WarningStyle.Render(
			fmt.Sprintf("%d changes held for manual review (below %.2f confidence).",
				len(review), cfg.ReviewThreshold)))
	}
	if len(applicable) == 0 {
		fmt.Println("Nothing to apply.")
		return nil
	}

	result, err := reconcile.Apply(ctx, store, applicable)
	if err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Applied %d changes.", result.Applied)))
	for _, failure := range result.Failed {
		slog.Error("Failed to apply change", "product_id", failure.ProductID, "error", failure.Error)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d changes failed to apply", len(result.Failed))
	}

	return nil
}
