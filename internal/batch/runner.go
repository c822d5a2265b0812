// Package batch runs the classifier over a product collection and
// aggregates per-node counts and a confidence histogram.
package batch

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/service"
)

// Confidence histogram buckets.
const (
	BucketHigh     = "high"     // >= 0.90
	BucketMedium   = "medium"   // 0.70 – 0.89
	BucketLow      = "low"      // 0.50 – 0.69
	BucketFallback = "fallback" // < 0.50
)

// Runner fans classification out over a worker pool. Each worker owns
// its own accumulator; accumulators are merged at the end, so counts
// are never lost to concurrent updates and processing order cannot
// affect any individual result.
type Runner struct {
	classifier service.Classifier
	onProgress func()
	workers    int
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the fan-out of the worker pool.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithProgress registers a callback invoked once per processed item.
// It may be called concurrently from multiple workers.
func WithProgress(fn func()) Option {
	return func(r *Runner) {
		r.onProgress = fn
	}
}

// NewRunner creates a batch runner around a classifier.
func NewRunner(classifier service.Classifier, opts ...Option) *Runner {
	r := &Runner{
		classifier: classifier,
		workers:    1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run classifies every product and returns the aggregated report.
// Cancellation is cooperative between items. A single product failing
// unexpectedly is recorded as a per-item failure without aborting the
// batch; on cancellation the partial report is returned alongside the
// context error.
func (r *Runner) Run(ctx context.Context, products []model.Product) (model.BatchReport, error) {
	jobs := make(chan model.Product)
	locals := make([]*accumulator, r.workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, p := range products {
			select {
			case jobs <- p:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < r.workers; i++ {
		acc := newAccumulator()
		locals[i] = acc
		g.Go(func() error {
			for p := range jobs {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if result, failure := r.classifyOne(p); failure != nil {
					acc.failures = append(acc.failures, *failure)
				} else {
					acc.add(result)
				}

				if r.onProgress != nil {
					r.onProgress()
				}
			}
			return nil
		})
	}

	err := g.Wait()
	return merge(locals), err
}

// classifyOne isolates a single product: a panic inside the classifier
// (e.g. a pathological regex input) becomes a recorded item failure.
func (r *Runner) classifyOne(p model.Product) (result model.ClassificationResult, failure *model.ItemFailure) {
	defer func() {
		if rec := recover(); rec != nil {
			failure = &model.ItemFailure{
				ProductID: p.ID,
				Reason:    fmt.Sprintf("classification panicked: %v", rec),
			}
		}
	}()

	result = r.classifier.ClassifyProduct(p)
	return result, nil
}

// BucketFor maps a confidence score to its histogram bucket.
func BucketFor(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return BucketHigh
	case confidence >= 0.7:
		return BucketMedium
	case confidence >= 0.5:
		return BucketLow
	default:
		return BucketFallback
	}
}

type accumulator struct {
	perNode   map[string]int
	histogram map[string]int
	results   []model.ClassificationResult
	failures  []model.ItemFailure
}

func newAccumulator() *accumulator {
	return &accumulator{
		perNode:   make(map[string]int),
		histogram: make(map[string]int),
	}
}

func (a *accumulator) add(result model.ClassificationResult) {
	a.perNode[result.NodeKey]++
	a.histogram[BucketFor(result.Confidence)]++
	a.results = append(a.results, result)
}

func merge(locals []*accumulator) model.BatchReport {
	report := model.BatchReport{
		PerNode:   make(map[string]int),
		Histogram: make(map[string]int),
	}

	for _, acc := range locals {
		if acc == nil {
			continue
		}
		for node, n := range acc.perNode {
			report.PerNode[node] += n
		}
		for bucket, n := range acc.histogram {
			report.Histogram[bucket] += n
		}
		report.Results = append(report.Results, acc.results...)
		report.Failures = append(report.Failures, acc.failures...)
	}

	// Stable output regardless of which worker finished first.
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].ProductID < report.Results[j].ProductID
	})
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].ProductID < report.Failures[j].ProductID
	})

	report.Processed = len(report.Results) + len(report.Failures)
	return report
}
