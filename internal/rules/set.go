package rules

import (
	"fmt"
	"sort"

	"github.com/farmaon/farmaclass/internal/common"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// Set is the validated, ordered rule collection. Rules are evaluated in
// descending priority, then definition order, so precedence is stable
// and deterministic across runs.
type Set struct {
	byNode map[string][]int
	rules  []Compiled
}

// NewSet validates rules against the taxonomy registry and builds the
// evaluation order. Any rule referencing an unknown target node, with
// an uncompilable regex, or with no predicate at all is a fatal error.
func NewSet(rs []Rule, registry *taxonomy.Registry) (*Set, error) {
	s := &Set{
		byNode: make(map[string][]int),
		rules:  make([]Compiled, 0, len(rs)),
	}

	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if r.Key == "" {
			return nil, fmt.Errorf("%w: rule targeting %q has no key", common.ErrInvalidRule, r.TargetNode)
		}
		if _, dup := seen[r.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate rule key %q", common.ErrInvalidRule, r.Key)
		}
		seen[r.Key] = struct{}{}

		if !registry.IsValid(r.TargetNode) {
			return nil, fmt.Errorf("%w: rule %q targets unknown taxonomy node %q",
				common.ErrInvalidRule, r.Key, r.TargetNode)
		}
		if !r.hasPredicate() {
			return nil, fmt.Errorf("%w: rule %q has no include, pattern or brand predicate",
				common.ErrInvalidRule, r.Key)
		}

		compiled, err := compile(r)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, compiled)
	}

	// Descending priority; SliceStable preserves definition order
	// within equal priorities.
	sort.SliceStable(s.rules, func(i, j int) bool {
		return s.rules[i].Priority > s.rules[j].Priority
	})

	for i, r := range s.rules {
		s.byNode[r.TargetNode] = append(s.byNode[r.TargetNode], i)
	}

	return s, nil
}

// All returns every rule in evaluation order.
func (s *Set) All() []Compiled {
	out := make([]Compiled, len(s.rules))
	copy(out, s.rules)
	return out
}

// For returns the rules voting for a taxonomy node, in evaluation order.
func (s *Set) For(nodeKey string) []Compiled {
	idx := s.byNode[nodeKey]
	out := make([]Compiled, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.rules[i])
	}
	return out
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}
