// Package service defines the interfaces between the classification core
// and its external collaborators.
package service

import (
	"context"
	"time"

	"github.com/farmaon/farmaclass/internal/model"
)

// ProductStore is the persistence boundary for products and applied
// classifications. The classification core never writes to storage
// directly; it hands a changeset to ApplyChanges.
type ProductStore interface {
	// ListProducts returns every product in the store.
	ListProducts(ctx context.Context) ([]model.Product, error)
	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	// SaveProducts inserts products, skipping duplicates by content hash.
	SaveProducts(ctx context.Context, products []model.Product) error
	// ApplyChanges persists a changeset with per-item failure semantics:
	// one bad row must not lose the rest of the batch.
	ApplyChanges(ctx context.Context, changes []model.ChangeRecord) (model.ApplyResult, error)
	// CategoryCounts returns the number of products per stored category.
	CategoryCounts(ctx context.Context) (map[string]int, error)
	Close() error
}

// Classifier produces a classification proposal for a single product.
type Classifier interface {
	ClassifyProduct(p model.Product) model.ClassificationResult
}

// RetryOptions configures retry behavior for persistence operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
