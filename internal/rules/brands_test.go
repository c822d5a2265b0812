package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandBrands(t *testing.T) {
	expanded := ExpandBrands([]string{"mustela", "oral b"})

	assert.Contains(t, expanded, "mustela")
	assert.Contains(t, expanded, "oral b")
	assert.Contains(t, expanded, "oralb")
	assert.Len(t, expanded, 3)
}

func TestExpandBrandsEmpty(t *testing.T) {
	assert.Empty(t, ExpandBrands(nil))
}
