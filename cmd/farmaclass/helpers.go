package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/farmaon/farmaclass/internal/classifier"
	"github.com/farmaon/farmaclass/internal/config"
	"github.com/farmaon/farmaclass/internal/rules"
	"github.com/farmaon/farmaclass/internal/storage"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// initStorage initializes the product store with proper path expansion
// and migrations applied.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/farmaclass/farmaclass.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadRegistry loads the taxonomy (built-in or from the configured
// file) and fails fast on a corrupt tree.
func loadRegistry() (*taxonomy.Registry, error) {
	path := config.ExpandPath(viper.GetString("taxonomy.file"))
	registry, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy validation failed: %w", err)
	}
	return registry, nil
}

// loadEngine wires taxonomy, rules and classification settings into a
// ready classifier engine. Any validation failure aborts startup.
func loadEngine() (*classifier.Engine, *taxonomy.Registry, *rules.Set, config.Classification, error) {
	registry, err := loadRegistry()
	if err != nil {
		return nil, nil, nil, config.Classification{}, err
	}

	rulesPath := config.ExpandPath(viper.GetString("rules.file"))
	set, err := rules.Load(rulesPath, registry)
	if err != nil {
		return nil, nil, nil, config.Classification{}, fmt.Errorf("rule set validation failed: %w", err)
	}

	cfg, err := config.LoadClassification()
	if err != nil {
		return nil, nil, nil, config.Classification{}, err
	}

	engine, err := classifier.New(registry, set, cfg)
	if err != nil {
		return nil, nil, nil, config.Classification{}, err
	}

	return engine, registry, set, cfg, nil
}
