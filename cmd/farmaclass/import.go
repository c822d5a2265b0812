package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/ingest"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalog.csv>",
		Short: "Import a catalog CSV into the database",
		Long: `Import catalog rows (Name, Description, Price, Stock, Image_File)
into the products table. Rows already present (by content hash) are
skipped, so imports are safe to re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	products, rowErrors, err := ingest.ReadCatalog(args[0])
	if err != nil {
		return err
	}
	for _, re := range rowErrors {
		slog.Warn("Skipped catalog row", "line", re.Line, "reason", re.Reason)
	}
	if len(products) == 0 {
		return common.NewUserError(fmt.Sprintf("no importable rows in %s", args[0]), common.ErrNoProducts)
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

	if err := store.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d products (%d rows skipped).\n", len(products), len(rowErrors))
	return nil
}
