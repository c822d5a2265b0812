package classifier

import (
	"fmt"
	"strings"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/config"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/rules"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// FallbackJustification is the justification string of the default result.
const FallbackJustification = "no rule matched; default applied"

// Engine evaluates the rule set against normalized product text and
// returns a single best taxonomy node with a confidence score.
// It is stateless per call: no I/O, no shared mutable state.
type Engine struct {
	registry *taxonomy.Registry
	cfg      config.Classification
	rules    []preparedRule
}

// preparedRule carries the normalized keyword lists alongside the
// compiled rule so matching never re-normalizes per call.
type preparedRule struct {
	rules.Compiled
	include []string
	exclude []string
	brands  []string
}

// New builds an engine from a validated rule set. The configured
// fallback node must resolve in the registry.
func New(registry *taxonomy.Registry, set *rules.Set, cfg config.Classification) (*Engine, error) {
	if !registry.IsValid(cfg.FallbackNode) {
		return nil, fmt.Errorf("%w: fallback node %q not in taxonomy",
			common.ErrInvalidConfig, cfg.FallbackNode)
	}

	all := set.All()
	prepared := make([]preparedRule, 0, len(all))
	for _, r := range all {
		prepared = append(prepared, preparedRule{
			Compiled: r,
			include:  normalizeAll(r.Include),
			exclude:  normalizeAll(r.Exclude),
			brands:   normalizeAll(rules.ExpandBrands(r.Brands)),
		})
	}

	return &Engine{
		registry: registry,
		cfg:      cfg,
		rules:    prepared,
	}, nil
}

func normalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if n := Normalize(kw); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// candidate is a rule that matched, with its specificity score:
// (sum of matched keyword lengths) × (count of distinct matches).
// Longer, multiply-confirmed matches outrank single short-keyword hits.
type candidate struct {
	rule     *preparedRule
	terms    []string
	sumLen   int
	brandHit bool
}

func (c *candidate) specificity() int {
	return c.sumLen * len(c.terms)
}

// beats implements the (priority, specificity) lexicographic order.
// Priority dominates; specificity only breaks ties within equal
// priority. Strict comparison keeps the earliest-defined rule on a
// full tie, so results are deterministic.
func (c *candidate) beats(other *candidate) bool {
	if c.rule.Priority != other.rule.Priority {
		return c.rule.Priority > other.rule.Priority
	}
	return c.specificity() > other.specificity()
}

// Classify maps a product name and description to a taxonomy node.
// It never fails: empty, whitespace-only and non-Latin input all
// produce a result, falling back to the configured default node with
// low confidence when no rule matches.
func (e *Engine) Classify(name, description string) model.ClassificationResult {
	return e.classify(0, name, description, "")
}

// ClassifyProduct classifies a stored product, letting brand hints
// also match the product's brand field.
func (e *Engine) ClassifyProduct(p model.Product) model.ClassificationResult {
	return e.classify(p.ID, p.Name, p.Description, p.Brand)
}

func (e *Engine) classify(productID int64, name, description, brand string) model.ClassificationResult {
	text := Normalize(name + " " + description)
	brandText := Normalize(brand + " " + name)

	var best *candidate
	var matched []string
	for i := range e.rules {
		r := &e.rules[i]
		if r.vetoed(text) {
			continue
		}
		c := r.match(text, brandText)
		if c == nil {
			continue
		}
		matched = append(matched, r.Key)
		if best == nil || c.beats(best) {
			best = c
		}
	}

	if best == nil {
		return e.fallback(productID)
	}

	result := e.resultFor(productID, best.rule.TargetNode)
	result.Confidence = e.confidence(best)
	result.Justification = justify(best)
	result.MatchedRules = winnerFirst(matched, best.rule.Key)
	return result
}

// winnerFirst orders the audit trail so the winning rule leads and the
// losing candidates follow in evaluation order.
func winnerFirst(matched []string, winner string) []string {
	out := make([]string, 0, len(matched))
	out = append(out, winner)
	for _, key := range matched {
		if key != winner {
			out = append(out, key)
		}
	}
	return out
}

// vetoed applies the exclusion predicates: any exclude match
// disqualifies the rule regardless of include matches.
func (r *preparedRule) vetoed(text string) bool {
	for _, kw := range r.exclude {
		if strings.Contains(text, kw) {
			return true
		}
	}
	for _, re := range r.CompiledExcludes() {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (r *preparedRule) match(text, brandText string) *candidate {
	c := &candidate{rule: r}
	seen := make(map[string]struct{})
	add := func(term string) {
		if term == "" {
			return
		}
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		c.terms = append(c.terms, term)
		c.sumLen += len(term)
	}

	for _, kw := range r.include {
		if strings.Contains(text, kw) {
			add(kw)
		}
	}
	for _, re := range r.CompiledPatterns() {
		if m := re.FindString(text); m != "" {
			add(m)
		}
	}
	for _, b := range r.brands {
		if strings.Contains(brandText, b) {
			add(b)
			c.brandHit = true
		}
	}

	if len(c.terms) == 0 {
		return nil
	}
	return c
}

// confidence derives the score from the winning rule's match tier.
// Per-rule overrides win; otherwise brand hits and multi-keyword
// matches earn the strong tier and single keywords the soft tier.
func (e *Engine) confidence(c *candidate) float64 {
	if c.rule.Confidence > 0 {
		return c.rule.Confidence
	}
	if c.brandHit || len(c.terms) >= 2 {
		return e.cfg.StrongConfidence
	}
	return e.cfg.SoftConfidence
}

func justify(c *candidate) string {
	quoted := make([]string, len(c.terms))
	for i, t := range c.terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("rule %s: matched %s", c.rule.Key, strings.Join(quoted, ", "))
}

func (e *Engine) fallback(productID int64) model.ClassificationResult {
	result := e.resultFor(productID, e.cfg.FallbackNode)
	result.Confidence = e.cfg.FallbackConfidence
	result.Justification = FallbackJustification
	return result
}

// resultFor fills the category/subcategory keys from the node's path
// in the taxonomy tree. The node is known valid: rule targets are
// checked at load time and the fallback node at engine construction.
func (e *Engine) resultFor(productID int64, nodeKey string) model.ClassificationResult {
	path, _ := e.registry.Path(nodeKey)

	result := model.ClassificationResult{
		ProductID: productID,
		NodeKey:   nodeKey,
	}
	if len(path) > 0 {
		result.CategoryKey = path[0].Key
	}
	if len(path) > 1 {
		result.SubcategoryKey = path[1].Key
	}
	return result
}
