package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/model"
)

func TestDiffUnchangedProducesNoRecords(t *testing.T) {
	results := []model.ClassificationResult{
		{ProductID: 1, CategoryKey: "dermo", SubcategoryKey: "dermo.spf", Confidence: 0.95},
		{ProductID: 2, CategoryKey: "baby", SubcategoryKey: "baby.diapers", Confidence: 1.0},
	}
	current := map[int64]model.CategoryPair{
		1: {Category: "dermo", Subcategory: "dermo.spf"},
		2: {Category: "baby", Subcategory: "baby.diapers"},
	}

	changes := Diff(results, current, 0.70)
	assert.Empty(t, changes)
}

func TestDiffDetectsChanges(t *testing.T) {
	results := []model.ClassificationResult{
		{
			ProductID:      3,
			CategoryKey:    "hygiene",
			SubcategoryKey: "hygiene.body",
			Confidence:     0.78,
			MatchedRules:   []string{"body-hygiene", "body-care"},
		},
	}
	current := map[int64]model.CategoryPair{
		3: {Category: "dermo", Subcategory: "dermo.body"},
	}

	changes := Diff(results, current, 0.70)
	require.Len(t, changes, 1)

	c := changes[0]
	assert.Equal(t, int64(3), c.ProductID)
	assert.Equal(t, model.CategoryPair{Category: "dermo", Subcategory: "dermo.body"}, c.From)
	assert.Equal(t, model.CategoryPair{Category: "hygiene", Subcategory: "hygiene.body"}, c.To)
	assert.Equal(t, "body-hygiene", c.RuleKey)
	assert.False(t, c.NeedsReview)
}

func TestDiffUncategorizedProductIsAChange(t *testing.T) {
	results := []model.ClassificationResult{
		{ProductID: 9, CategoryKey: "vitamins", Confidence: 0.78},
	}

	changes := Diff(results, map[int64]model.CategoryPair{}, 0.70)
	require.Len(t, changes, 1)
	assert.Equal(t, model.CategoryPair{}, changes[0].From)
	assert.Equal(t, "vitamins", changes[0].To.Category)
}

func TestDiffFlagsLowConfidenceForReview(t *testing.T) {
	results := []model.ClassificationResult{
		{ProductID: 1, CategoryKey: "dermo", Confidence: 0.40},
		{ProductID: 2, CategoryKey: "dermo", Confidence: 0.70},
	}

	changes := Diff(results, map[int64]model.CategoryPair{}, 0.70)
	require.Len(t, changes, 2)
	assert.True(t, changes[0].NeedsReview)
	assert.False(t, changes[1].NeedsReview)
}

func TestDiffSortedByProductID(t *testing.T) {
	results := []model.ClassificationResult{
		{ProductID: 30, CategoryKey: "dermo", Confidence: 0.78},
		{ProductID: 10, CategoryKey: "baby", Confidence: 0.78},
		{ProductID: 20, CategoryKey: "otc", Confidence: 0.78},
	}

	changes := Diff(results, map[int64]model.CategoryPair{}, 0.70)
	require.Len(t, changes, 3)
	assert.Equal(t, int64(10), changes[0].ProductID)
	assert.Equal(t, int64(20), changes[1].ProductID)
	assert.Equal(t, int64(30), changes[2].ProductID)
}

func TestApplicable(t *testing.T) {
	changes := []model.ChangeRecord{
		{ProductID: 1, NeedsReview: false},
		{ProductID: 2, NeedsReview: true},
		{ProductID: 3, NeedsReview: false},
	}

	apply, review := Applicable(changes)
	require.Len(t, apply, 2)
	require.Len(t, review, 1)
	assert.Equal(t, int64(2), review[0].ProductID)
}

// fakeStore scripts ApplyChanges outcomes; the other store methods are
// not exercised by reconcile.
type fakeStore struct {
	applyFn func(ctx context.Context, changes []model.ChangeRecord) (model.ApplyResult, error)
	calls   int
}

func (f *fakeStore) ApplyChanges(ctx context.Context, changes []model.ChangeRecord) (model.ApplyResult, error) {
	f.calls++
	return f.applyFn(ctx, changes)
}

func (f *fakeStore) ListProducts(context.Context) ([]model.Product, error) { return nil, nil }
func (f *fakeStore) GetProduct(context.Context, int64) (*model.Product, error) {
	return nil, common.ErrNotFound
}
func (f *fakeStore) SaveProducts(context.Context, []model.Product) error { return nil }
func (f *fakeStore) CategoryCounts(context.Context) (map[string]int, error) {
	return nil, nil
}
func (f *fakeStore) Close() error { return nil }

func TestApplyEmptyChangesetSkipsStore(t *testing.T) {
	store := &fakeStore{applyFn: func(context.Context, []model.ChangeRecord) (model.ApplyResult, error) {
		return model.ApplyResult{}, nil
	}}

	result, err := Apply(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Applied)
	assert.Zero(t, store.calls)
}

func TestApplyReportsPartialFailure(t *testing.T) {
	store := &fakeStore{applyFn: func(_ context.Context, changes []model.ChangeRecord) (model.ApplyResult, error) {
		return model.ApplyResult{
			Applied: len(changes) - 1,
			Failed:  []model.ApplyFailure{{ProductID: changes[0].ProductID, Error: "gone"}},
		}, nil
	}}

	changes := []model.ChangeRecord{
		{ProductID: 1, To: model.CategoryPair{Category: "dermo"}},
		{ProductID: 2, To: model.CategoryPair{Category: "baby"}},
	}

	result, err := Apply(context.Background(), store, changes)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(1), result.Failed[0].ProductID)
	assert.Equal(t, 1, store.calls)
}

func TestApplyDoesNotRetryPermanentErrors(t *testing.T) {
	permanent := &common.RetryableError{Err: errors.New("constraint violated"), Retryable: false}
	store := &fakeStore{applyFn: func(context.Context, []model.ChangeRecord) (model.ApplyResult, error) {
		return model.ApplyResult{}, permanent
	}}

	_, err := Apply(context.Background(), store, []model.ChangeRecord{{ProductID: 1}})
	require.Error(t, err)
	assert.Equal(t, 1, store.calls)
}
