// Package model defines the core domain models used throughout the application.
package model

// ClassificationResult is the proposed categorization for one product.
type ClassificationResult struct {
	CategoryKey    string   // top-level taxonomy key
	SubcategoryKey string   // second-level taxonomy key, empty for top-level hits
	NodeKey        string   // full key of the winning node (may be third-level)
	Justification  string   // short human-readable reason
	MatchedRules   []string // rule keys that produced the result, for auditing
	ProductID      int64
	Confidence     float64
}

// CategoryPair is a stored (category, subcategory) assignment.
type CategoryPair struct {
	Category    string
	Subcategory string
}

// ChangeRecord is a proposed from→to category change for one product,
// pending application.
type ChangeRecord struct {
	From        CategoryPair
	To          CategoryPair
	RuleKey     string
	ProductID   int64
	Confidence  float64
	NeedsReview bool
}

// ItemFailure records a single product that could not be classified.
type ItemFailure struct {
	Reason    string
	ProductID int64
}

// BatchReport aggregates the outcome of one classification run.
type BatchReport struct {
	PerNode   map[string]int
	Histogram map[string]int
	Results   []ClassificationResult
	Failures  []ItemFailure
	Processed int
}

// ApplyFailure records a single product whose update could not be persisted.
type ApplyFailure struct {
	Error     string
	ProductID int64
}

// ApplyResult reports partial success of a changeset application.
type ApplyResult struct {
	Failed  []ApplyFailure
	Applied int
}
