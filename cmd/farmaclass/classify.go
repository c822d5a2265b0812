package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/farmaon/farmaclass/internal/batch"
	"github.com/farmaon/farmaclass/internal/cli"
	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/ingest"
	"github.com/farmaon/farmaclass/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify catalog products",
		Long: `Classify products into the category taxonomy and report the results.

By default products are read from the database and the computed
changeset is only displayed. Pass --apply to persist changes whose
confidence clears the review threshold.

Examples:
  farmaclass classify                      # classify the stored catalog, dry run
  farmaclass classify --apply              # persist confident changes
  farmaclass classify --input catalog.csv  # classify a catalog file, report only
  farmaclass classify --min-confidence 0.9 # stricter review threshold`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("input", "i", "", "classify a catalog CSV instead of the database")
	cmd.Flags().Bool("apply", false, "persist changes above the review threshold")
	cmd.Flags().Float64("min-confidence", 0, "review threshold override (0..1)")
	cmd.Flags().Int("workers", 0, "worker pool size override")
	cmd.Flags().Bool("show-results", false, "print every per-product result")

	_ = viper.BindPFlag("classify.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("classify.apply", cmd.Flags().Lookup("apply"))
	_ = viper.BindPFlag("classify.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("classify.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("classify.show_results", cmd.Flags().Lookup("show-results"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	input := viper.GetString("classify.input")
	apply := viper.GetBool("classify.apply")
	showResults := viper.GetBool("classify.show_results")

	engine, registry, set, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	if override := viper.GetFloat64("classify.min_confidence"); override > 0 {
		cfg.ReviewThreshold = override
	}
	if workers := viper.GetInt("classify.workers"); workers > 0 {
		cfg.Workers = workers
	}

	slog.Info("Loaded classification config",
		"taxonomy_nodes", registry.Len(),
		"rules", set.Len(),
		"workers", cfg.Workers)

	var products []model.Product
	if input != "" {
		if apply {
			return common.NewUserError("--apply requires classifying the database, not --input", nil)
		}
		var rowErrors []ingest.RowError
		products, rowErrors, err = ingest.ReadCatalog(input)
		if err != nil {
			return err
		}
		for _, re := range rowErrors {
			slog.Warn("Skipped catalog row", "line", re.Line, "reason", re.Reason)
		}
		// Catalog rows have no database IDs yet; number them so the
		// report stays readable.
		for i := range products {
			products[i].ID = int64(i + 1)
		}
	} else {
		store, storeErr := initStorage(ctx)
		if storeErr != nil {
			return fmt.Errorf("failed to open database: %w", storeErr)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()

		products, err = store.ListProducts(ctx)
		if err != nil {
			return err
		}

		return classifyStored(cmd, store, engine, registry, cfg, products, apply, showResults)
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

	return nil
}
