// Package reconcile compares newly computed classifications against the
// stored state and produces a reviewable changeset. It never writes to
// storage itself; applying a changeset is an explicit, separate step.
package reconcile

import (
	"context"
	"sort"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/service"
)

// Diff builds the changeset between proposed classifications and the
// current stored (category, subcategory) assignments. Products whose
// proposal equals the stored state produce no record, so re-classifying
// an already correct catalog yields an empty changeset. Changes below
// reviewThreshold are flagged for manual review rather than auto-apply.
func Diff(results []model.ClassificationResult, current map[int64]model.CategoryPair, reviewThreshold float64) []model.ChangeRecord {
	var changes []model.ChangeRecord

	for _, result := range results {
		from := current[result.ProductID]
		to := model.CategoryPair{
			Category:    result.CategoryKey,
			Subcategory: result.SubcategoryKey,
		}
		if from == to {
			continue
		}

		record := model.ChangeRecord{
			ProductID:   result.ProductID,
			From:        from,
			To:          to,
			Confidence:  result.Confidence,
			NeedsReview: result.Confidence < reviewThreshold,
		}
		if len(result.MatchedRules) > 0 {
			record.RuleKey = result.MatchedRules[0]
		}
		changes = append(changes, record)
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].ProductID < changes[j].ProductID
	})
	return changes
}

// Applicable splits a changeset into the records safe to auto-apply and
// those held back for manual review.
func Applicable(changes []model.ChangeRecord) (apply, review []model.ChangeRecord) {
	for _, c := range changes {
		if c.NeedsReview {
			review = append(review, c)
		} else {
			apply = append(apply, c)
		}
	}
	return apply, review
}

// Apply persists a changeset through the product store with retry on
// transient failures. Per-item failures are reported, not fatal: the
// caller can re-run just the failed subset.
func Apply(ctx context.Context, store service.ProductStore, changes []model.ChangeRecord) (model.ApplyResult, error) {
	if len(changes) == 0 {
		return model.ApplyResult{}, nil
	}

	var result model.ApplyResult
	err := common.WithRetry(ctx, func() error {
		var applyErr error
		result, applyErr = store.ApplyChanges(ctx, changes)
		return applyErr
	}, service.RetryOptions{MaxAttempts: 3})

	return result, err
}
