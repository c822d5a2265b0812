package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaon/farmaclass/internal/config"
	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/rules"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

func testConfig() config.Classification {
	return config.Classification{
		FallbackNode:       "dermo.face",
		StrongConfidence:   0.95,
		SoftConfidence:     0.78,
		FallbackConfidence: 0.40,
		ReviewThreshold:    0.70,
		Workers:            1,
	}
}

func newDefaultEngine(t *testing.T) *Engine {
	t.Helper()

	registry, err := taxonomy.NewRegistry(taxonomy.DefaultNodes())
	require.NoError(t, err)

	set, err := rules.NewSet(rules.DefaultRules(), registry)
	require.NoError(t, err)

	engine, err := New(registry, set, testConfig())
	require.NoError(t, err)
	return engine
}

func TestNewRejectsUnknownFallbackNode(t *testing.T) {
	registry, err := taxonomy.NewRegistry(taxonomy.DefaultNodes())
	require.NoError(t, err)
	set, err := rules.NewSet(rules.DefaultRules(), registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "does.not.exist"

	_, err = New(registry, set, cfg)
	assert.Error(t, err)
}

func TestClassifySunProtection(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Vichy Capital Soleil SPF 50 Fluid", "")

	assert.Equal(t, "dermo.spf", result.NodeKey)
	assert.Equal(t, "dermo", result.CategoryKey)
	assert.GreaterOrEqual(t, result.Confidence, 0.9)
	assert.Contains(t, result.Justification, "spf")
}

func TestClassifyDiapersByBrand(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Pampers Premium Care Pants", "")

	assert.Equal(t, "baby.diapers", result.NodeKey)
	assert.Equal(t, "baby", result.CategoryKey)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Contains(t, result.Justification, "diapers")
}

func TestClassifyBabyHygieneBeatsGenericBodyCare(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Mustela Bébé Lait Hydratant", "")

	assert.Equal(t, "baby.hygiene", result.NodeKey)
	assert.NotEqual(t, "dermo.body", result.NodeKey)
}

func TestClassifyFallback(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Random Unbranded Tube", "")

	assert.Equal(t, "dermo.face", result.NodeKey)
	assert.LessOrEqual(t, result.Confidence, 0.5)
	assert.Equal(t, FallbackJustification, result.Justification)
	assert.Empty(t, result.MatchedRules)
}

func TestClassifyExcludeBeatsSunProtection(t *testing.T) {
	engine := newDefaultEngine(t)

	// Anti-blemish face product that also mentions SPF: the acne vocabulary
	// vetoes the sun-protection rule, so the face rule wins.
	result := engine.Classify("Anthelios Face SPF Anti-Blemish", "acne treatment with SPF")

	assert.Equal(t, "dermo.face.acne", result.NodeKey)
	assert.Equal(t, "dermo", result.CategoryKey)
	assert.Equal(t, "dermo.face", result.SubcategoryKey)
	assert.NotEqual(t, "dermo.spf", result.NodeKey)
}

func TestClassifyWinnerLeadsMatchedRules(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Anthelios Face SPF Anti-Blemish", "acne treatment")

	require.NotEmpty(t, result.MatchedRules)
	assert.Equal(t, "face-anti-blemish", result.MatchedRules[0])
}

func TestClassifyNeverFails(t *testing.T) {
	engine := newDefaultEngine(t)

	inputs := []struct {
		name        string
		description string
	}{
		{"", ""},
		{" \t ", "\n"},
		{"!!!", "???"},
		{"Витамин Д3 капки", ""},
		{strings.Repeat("x", 10000), ""},
	}

	for _, input := range inputs {
		result := engine.Classify(input.name, input.description)
		assert.True(t, engineRegistryHas(t, engine, result.NodeKey),
			"node %q for input %q", result.NodeKey, input.name)
		assert.NotEmpty(t, result.Justification)
	}
}

func engineRegistryHas(t *testing.T, engine *Engine, key string) bool {
	t.Helper()
	return engine.registry.IsValid(key)
}

func TestClassifyDeterministic(t *testing.T) {
	engine := newDefaultEngine(t)

	names := []string{
		"Vichy Capital Soleil SPF 50 Fluid",
		"Pampers Premium Care Pants",
		"Mustela Bébé Lait Hydratant",
		"Random Unbranded Tube",
		"Vitamin C 1000mg shumëvitaminë",
	}

	for _, name := range names {
		first := engine.Classify(name, "")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, engine.Classify(name, ""), "input %q", name)
		}
	}
}

func TestClassifyProductUsesBrandField(t *testing.T) {
	engine := newDefaultEngine(t)

	// The brand hint lives in the brand column, not in the name.
	result := engine.ClassifyProduct(model.Product{
		ID:    7,
		Name:  "Premium Care Pants 4-8kg",
		Brand: "Pampers",
	})

	assert.Equal(t, int64(7), result.ProductID)
	assert.Equal(t, "baby.diapers", result.NodeKey)
}

func TestClassifyBrandAliasSpelling(t *testing.T) {
	engine := newDefaultEngine(t)

	// "OralB" without the hyphen still matches the "oral b" brand hint.
	result := engine.Classify("OralB Pro 3 elektrike", "")

	assert.Equal(t, "hygiene.oral", result.NodeKey)
}

func TestClassifyPriorityDominatesSpecificity(t *testing.T) {
	nodes := []taxonomy.Node{
		{Key: "a", DisplayName: "A"},
		{Key: "b", DisplayName: "B"},
	}
	registry, err := taxonomy.NewRegistry(nodes)
	require.NoError(t, err)

	set, err := rules.NewSet([]rules.Rule{
		{Key: "short-high", TargetNode: "a", Include: []string{"gel"}, Priority: 90},
		{Key: "long-low", TargetNode: "b", Include: []string{"gel dush relaksues", "gel dush"}, Priority: 50},
	}, registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "a"
	engine, err := New(registry, set, cfg)
	require.NoError(t, err)

	result := engine.Classify("gel dush relaksues", "")
	assert.Equal(t, "a", result.NodeKey)
}

func TestClassifySpecificityBreaksPriorityTies(t *testing.T) {
	nodes := []taxonomy.Node{
		{Key: "a", DisplayName: "A"},
		{Key: "b", DisplayName: "B"},
	}
	registry, err := taxonomy.NewRegistry(nodes)
	require.NoError(t, err)

	set, err := rules.NewSet([]rules.Rule{
		{Key: "generic", TargetNode: "a", Include: []string{"krem"}, Priority: 50},
		{Key: "specific", TargetNode: "b", Include: []string{"krem dielli"}, Priority: 50},
	}, registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "a"
	engine, err := New(registry, set, cfg)
	require.NoError(t, err)

	result := engine.Classify("Krem dielli SPF", "")
	assert.Equal(t, "b", result.NodeKey)
}

func TestClassifyFirstDefinedWinsFullTie(t *testing.T) {
	nodes := []taxonomy.Node{
		{Key: "a", DisplayName: "A"},
		{Key: "b", DisplayName: "B"},
	}
	registry, err := taxonomy.NewRegistry(nodes)
	require.NoError(t, err)

	set, err := rules.NewSet([]rules.Rule{
		{Key: "first", TargetNode: "a", Include: []string{"serum"}, Priority: 50},
		{Key: "second", TargetNode: "b", Include: []string{"serum"}, Priority: 50},
	}, registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "a"
	engine, err := New(registry, set, cfg)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		result := engine.Classify("serum", "")
		assert.Equal(t, "a", result.NodeKey)
		assert.Equal(t, "first", result.MatchedRules[0])
	}
}

func TestClassifyExcludeVetoesOwnRuleOnly(t *testing.T) {
	nodes := []taxonomy.Node{
		{Key: "a", DisplayName: "A"},
		{Key: "b", DisplayName: "B"},
	}
	registry, err := taxonomy.NewRegistry(nodes)
	require.NoError(t, err)

	set, err := rules.NewSet([]rules.Rule{
		{Key: "vetoed", TargetNode: "a", Include: []string{"krem"}, Exclude: []string{"bebe"}, Priority: 90},
		{Key: "survivor", TargetNode: "b", Include: []string{"krem"}, Priority: 10},
	}, registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "a"
	engine, err := New(registry, set, cfg)
	require.NoError(t, err)

	result := engine.Classify("krem per bebe", "")
	assert.Equal(t, "b", result.NodeKey)
	assert.NotContains(t, result.MatchedRules, "vetoed")
}

func TestConfidenceTiers(t *testing.T) {
	nodes := []taxonomy.Node{
		{Key: "a", DisplayName: "A"},
	}
	registry, err := taxonomy.NewRegistry(nodes)
	require.NoError(t, err)

	set, err := rules.NewSet([]rules.Rule{
		{Key: "soft", TargetNode: "a", Include: []string{"shampo"}, Priority: 50},
		{Key: "strong", TargetNode: "a", Include: []string{"pelena", "pelena bebe"}, Priority: 60},
		{Key: "branded", TargetNode: "a", Brands: []string{"acme"}, Priority: 70},
		{Key: "pinned", TargetNode: "a", Include: []string{"termometer"}, Priority: 80, Confidence: 1.0},
	}, registry)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FallbackNode = "a"
	engine, err := New(registry, set, cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		input      string
		confidence float64
	}{
		{"single keyword earns soft tier", "shampo per floke", 0.78},
		{"multiple keywords earn strong tier", "pelena bebe", 0.95},
		{"brand hit earns strong tier", "acme gel", 0.95},
		{"per-rule override wins", "termometer digjital", 1.0},
		{"no match earns fallback tier", "asgjë e njohur", 0.40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Classify(tt.input, "")
			assert.InDelta(t, tt.confidence, result.Confidence, 1e-9)
		})
	}
}

func TestClassifySubSubcategoryMapsKeys(t *testing.T) {
	engine := newDefaultEngine(t)

	result := engine.Classify("Effaclar krem kundër aknes", "")

	assert.Equal(t, "dermo.face.acne", result.NodeKey)
	assert.Equal(t, "dermo", result.CategoryKey)
	assert.Equal(t, "dermo.face", result.SubcategoryKey)
}
