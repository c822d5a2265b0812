package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/testutil"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Vichy Capital Soleil SPF 50 Fluid", Brand: "Vichy", Price: 18.90, StockQty: 12},
		{Name: "Pampers Premium Care Pants 4", Brand: "Pampers", Price: 11.50, StockQty: 40},
		{Name: "Mustela Bébé Lait Hydratant", Brand: "Mustela", Price: 9.20, StockQty: 7},
	}
}

func TestSaveAndListProducts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SaveProducts(ctx, sampleProducts()))

	stored, err := db.Storage.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	assert.Equal(t, "Vichy Capital Soleil SPF 50 Fluid", stored[0].Name)
	assert.Equal(t, "Vichy", stored[0].Brand)
	assert.NotEmpty(t, stored[0].Hash)
	assert.Positive(t, stored[0].ID)
}

func TestSaveProductsIgnoresDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SaveProducts(ctx, sampleProducts()))
	require.NoError(t, db.Storage.SaveProducts(ctx, sampleProducts()))

	stored, err := db.Storage.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestSaveProductsValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	err := db.Storage.SaveProducts(ctx, nil)
	assert.Error(t, err)

	err = db.Storage.SaveProducts(ctx, []model.Product{{Name: ""}})
	assert.Error(t, err)
}

func TestGetProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())
	ctx := context.Background()

	p, err := db.Storage.GetProduct(ctx, stored[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Pampers Premium Care Pants 4", p.Name)

	_, err = db.Storage.GetProduct(ctx, 99999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestApplyChanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())
	ctx := context.Background()

	changes := []model.ChangeRecord{
		{
			ProductID:  stored[0].ID,
			To:         model.CategoryPair{Category: "dermo", Subcategory: "dermo.spf"},
			RuleKey:    "sun-protection",
			Confidence: 0.95,
		},
		{
			ProductID:  stored[1].ID,
			To:         model.CategoryPair{Category: "baby", Subcategory: "baby.diapers"},
			RuleKey:    "diapers",
			Confidence: 1.0,
		},
	}

	result, err := db.Storage.ApplyChanges(ctx, changes)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Empty(t, result.Failed)

	p, err := db.Storage.GetProduct(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "dermo", p.Category)
	assert.Equal(t, "dermo.spf", p.Subcategory)
}

func TestApplyChangesPartialFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())
	ctx := context.Background()

	changes := []model.ChangeRecord{
		{ProductID: stored[0].ID, To: model.CategoryPair{Category: "dermo", Subcategory: "dermo.spf"}},
		{ProductID: 99999, To: model.CategoryPair{Category: "baby"}},
		{ProductID: stored[2].ID, To: model.CategoryPair{Category: "baby", Subcategory: "baby.hygiene"}},
	}

	result, err := db.Storage.ApplyChanges(ctx, changes)
	require.NoError(t, err)

	// The missing product fails; the rows around it still apply.
	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(99999), result.Failed[0].ProductID)

	p, err := db.Storage.GetProduct(ctx, stored[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "baby.hygiene", p.Subcategory)
}

func TestApplyChangesRecordsHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())
	ctx := context.Background()

	first := []model.ChangeRecord{{
		ProductID:  stored[0].ID,
		To:         model.CategoryPair{Category: "dermo", Subcategory: "dermo.body"},
		RuleKey:    "body-care",
		Confidence: 0.78,
	}}
	second := []model.ChangeRecord{{
		ProductID:  stored[0].ID,
		From:       model.CategoryPair{Category: "dermo", Subcategory: "dermo.body"},
		To:         model.CategoryPair{Category: "dermo", Subcategory: "dermo.spf"},
		RuleKey:    "sun-protection",
		Confidence: 0.95,
	}}

	_, err := db.Storage.ApplyChanges(ctx, first)
	require.NoError(t, err)
	_, err = db.Storage.ApplyChanges(ctx, second)
	require.NoError(t, err)

	entries, err := db.Storage.History(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "sun-protection", entries[0].RuleKey)
	assert.Equal(t, "dermo.body", entries[0].OldSubcategory)
	assert.Equal(t, "dermo.spf", entries[0].Subcategory)
	assert.Equal(t, "body-care", entries[1].RuleKey)
	assert.Empty(t, entries[1].OldCategory)
}

func TestHistoryEmptyForUnchangedProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())

	entries, err := db.Storage.History(context.Background(), stored[0].ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCategoryCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stored := db.SeedProducts(sampleProducts())
	ctx := context.Background()

	_, err := db.Storage.ApplyChanges(ctx, []model.ChangeRecord{
		{ProductID: stored[0].ID, To: model.CategoryPair{Category: "dermo", Subcategory: "dermo.spf"}},
		{ProductID: stored[1].ID, To: model.CategoryPair{Category: "baby", Subcategory: "baby.diapers"}},
	})
	require.NoError(t, err)

	counts, err := db.Storage.CategoryCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, counts["dermo"])
	assert.Equal(t, 1, counts["baby"])
	assert.Equal(t, 1, counts[""])
}
