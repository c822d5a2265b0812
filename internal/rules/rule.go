// Package rules holds the versioned classification rule set: each rule
// binds a taxonomy node to match predicates, exclusions, brand hints
// and a priority used for tie-breaking.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/farmaon/farmaclass/internal/common"
)

// Rule votes for one taxonomy node. Keywords are authored in
// normalized form (lowercase, no diacritics) and matched as substrings
// of the normalized product text; patterns are regular expressions
// compiled case-insensitively against the same text.
type Rule struct {
	// Key identifies the rule in justifications and audit output.
	Key string `mapstructure:"key"`
	// TargetNode is the taxonomy node this rule votes for.
	TargetNode string `mapstructure:"target"`
	// Include keywords: a substring match on any member is a hit.
	Include []string `mapstructure:"include"`
	// Patterns are regex alternatives to Include.
	Patterns []string `mapstructure:"patterns"`
	// Exclude keywords: a match disqualifies the rule entirely,
	// independent of include matches.
	Exclude []string `mapstructure:"exclude"`
	// ExcludePatterns are regex alternatives to Exclude.
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
	// Brands independently justify the target node when found in the
	// product's brand or name.
	Brands []string `mapstructure:"brands"`
	// Priority breaks ties between rules; higher wins.
	Priority int `mapstructure:"priority"`
	// Confidence optionally pins the confidence for this rule.
	// Zero means "derive from the configured tier thresholds".
	Confidence float64 `mapstructure:"confidence"`
}

// Compiled is a rule with its regex patterns compiled.
type Compiled struct {
	Rule
	compiledPatterns []*regexp.Regexp
	compiledExcludes []*regexp.Regexp
}

// CompiledPatterns returns the compiled include patterns.
func (c *Compiled) CompiledPatterns() []*regexp.Regexp {
	return c.compiledPatterns
}

// CompiledExcludes returns the compiled exclude patterns.
func (c *Compiled) CompiledExcludes() []*regexp.Regexp {
	return c.compiledExcludes
}

func compile(r Rule) (Compiled, error) {
	c := Compiled{Rule: r}

	var err error
	if c.compiledPatterns, err = compilePatterns(r.Key, r.Patterns); err != nil {
		return Compiled{}, err
	}
	if c.compiledExcludes, err = compilePatterns(r.Key, r.ExcludePatterns); err != nil {
		return Compiled{}, err
	}

	return c, nil
}

func compilePatterns(ruleKey string, patterns []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, p := range patterns {
		// Case-insensitive by default, same as the normalized input.
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q has invalid pattern %q: %v",
				common.ErrInvalidRule, ruleKey, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// hasPredicate reports whether the rule can ever match anything.
func (r Rule) hasPredicate() bool {
	return len(r.Include) > 0 || len(r.Patterns) > 0 || len(r.Brands) > 0
}
