package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/core/domain"
)

func TestAdapter_Owns(t *testing.T) {
	a := New()

	assert.True(t, a.Owns("input/indicators/ANC.IND.1.json"))
	assert.False(t, a.Owns("input/indicators/README.md"))
	assert.False(t, a.Owns("input/vocabulary/x.json"))
}

func TestAdapter_SerializeParse_RoundTrip(t *testing.T) {
	a := New()
	original := domain.Indicator{
		ID:          "ANC.IND.1",
		Name:        "First contact coverage",
		Numerator:   "Women with a first ANC contact",
		Denominator: "Estimated pregnant women",
	}

	content, err := a.Serialize(original)
	require.NoError(t, err)

	parsed, err := a.Parse(a.FilePath(original), content)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestAdapter_Parse_InvalidJSON(t *testing.T) {
	a := New()

	_, err := a.Parse("input/indicators/bad.json", "not json at all")

	assert.Error(t, err)
}

func TestAdapter_Validate(t *testing.T) {
	a := New()

	result := a.Validate(domain.Indicator{ID: "ANC.IND.1", Name: "Coverage", Numerator: "n", Denominator: "d"})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	result = a.Validate(domain.Indicator{ID: "ANC.IND.1", Numerator: "n", Denominator: "d"})
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeMissingName, result.Errors[0].Code)

	result = a.Validate(domain.Indicator{Name: "Coverage"})
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 3)
	assert.Equal(t, domain.CodeMissingID, result.Warnings[0].Code)
	assert.Equal(t, CodeNoNumerator, result.Warnings[1].Code)
	assert.Equal(t, CodeNoDenominator, result.Warnings[2].Code)
}
