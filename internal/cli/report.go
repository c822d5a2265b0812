package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/farmaon/farmaclass/internal/batch"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// RenderReport formats a batch report for the terminal: totals,
// per-node counts and the confidence histogram.
func RenderReport(report model.BatchReport, registry *taxonomy.Registry) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Classification report"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", BoldStyle.Render("Processed:"), report.Processed)
	if len(report.Failures) > 0 {
		fmt.Fprintf(&b, "%s %d\n", ErrorStyle.Render("Failed:"), len(report.Failures))
	}

	nodes := make([]string, 0, len(report.PerNode))
	for node := range report.PerNode {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	b.WriteString(BoldStyle.Render("\nPer category:\n"))
	for _, node := range nodes {
		label := node
		if n, err := registry.Resolve(node); err == nil {
			label = fmt.Sprintf("%s (%s)", node, n.DisplayName)
		}
		fmt.Fprintf(&b, "  %-40s %5d\n", label, report.PerNode[node])
	}

	b.WriteString(BoldStyle.Render("\nConfidence:\n"))
	for _, bucket := range []string{batch.BucketHigh, batch.BucketMedium, batch.BucketLow, batch.BucketFallback} {
		if n, ok := report.Histogram[bucket]; ok {
			fmt.Fprintf(&b, "  %-10s %5d\n", bucket, n)
		}
	}

	for _, failure := range report.Failures {
		b.WriteString(ErrorStyle.Render(
			fmt.Sprintf("  product %d failed: %s\n", failure.ProductID, failure.Reason)))
	}

	return b.String()
}

// RenderResults lists every result with its rule and confidence so
// low-confidence classifications are auditable rather than silently
// applied.
func RenderResults(results []model.ClassificationResult) string {
	var b strings.Builder
	for _, r := range results {
		line := fmt.Sprintf("  #%d → %s  conf=%.2f  %s\n",
			r.ProductID, r.NodeKey, r.Confidence, r.Justification)
		if r.Confidence < 0.5 {
			b.WriteString(WarningStyle.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}

// RenderChanges formats a changeset for review before it is applied.
func RenderChanges(changes []model.ChangeRecord) string {
	if len(changes) == 0 {
		return SuccessStyle.Render("No changes: stored classifications already match.\n")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Proposed changes (%d)", len(changes))))
	b.WriteString("\n")

	for _, c := range changes {
		line := fmt.Sprintf("  #%d  %s/%s → %s/%s  conf=%.2f  rule=%s",
			c.ProductID,
			orDash(c.From.Category), orDash(c.From.Subcategory),
			orDash(c.To.Category), orDash(c.To.Subcategory),
			c.Confidence, orDash(c.RuleKey))
		if c.NeedsReview {
			b.WriteString(WarningStyle.Render(line + "  [needs review]"))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
