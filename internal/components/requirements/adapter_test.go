package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/core/domain"
)

func TestAdapter_Owns(t *testing.T) {
	a := New()

	assert.True(t, a.Owns("input/requirements/anc-requirements.md"))
	assert.False(t, a.Owns("input/requirements/matrix.xlsx"))
	assert.False(t, a.Owns("input/pagecontent/reqs.md"))
}

func TestAdapter_Parse_Sections(t *testing.T) {
	a := New()
	md := `# ANC Requirements

## Functional

### FR1

The system records each contact.

### FR2

The system schedules the next contact.

## Non-functional

### NFR1

Works offline.
`

	payload, err := a.Parse("input/requirements/anc-requirements.md", md)

	require.NoError(t, err)
	assert.Equal(t, "anc-requirements", payload.ID)
	assert.Equal(t, "ANC Requirements", payload.Title)
	require.Len(t, payload.Functional, 2)
	assert.Equal(t, "FR1", payload.Functional[0].Label)
	assert.Equal(t, "The system records each contact.", payload.Functional[0].Description)
	require.Len(t, payload.NonFunctional, 1)
	assert.Equal(t, "NFR1", payload.NonFunctional[0].Label)
	assert.Equal(t, "Works offline.", payload.NonFunctional[0].Description)
	assert.Equal(t, md, payload.Markdown)
}

func TestAdapter_Parse_IgnoresNonRequirementHeadings(t *testing.T) {
	a := New()
	md := "### Overview\n\nProse.\n\n### FR10\n\nReal requirement.\n"

	payload, err := a.Parse("input/requirements/r.md", md)

	require.NoError(t, err)
	require.Len(t, payload.Functional, 1)
	assert.Equal(t, "FR10", payload.Functional[0].Label)
	assert.Empty(t, payload.NonFunctional)
}

func TestAdapter_SerializeParse_RoundTrip(t *testing.T) {
	a := New()
	original := domain.Requirements{
		ID:    "anc-requirements",
		Title: "ANC Requirements",
		Functional: []domain.RequirementItem{
			{Label: "FR1", Description: "Records each contact."},
		},
		NonFunctional: []domain.RequirementItem{
			{Label: "NFR1", Description: "Works offline."},
		},
	}

	content, err := a.Serialize(original)
	require.NoError(t, err)

	parsed, err := a.Parse(a.FilePath(original), content)
	require.NoError(t, err)
	assert.Equal(t, original.Title, parsed.Title)
	assert.Equal(t, original.Functional, parsed.Functional)
	assert.Equal(t, original.NonFunctional, parsed.NonFunctional)
}

func TestAdapter_Validate(t *testing.T) {
	a := New()

	result := a.Validate(domain.Requirements{
		ID:         "r",
		Functional: []domain.RequirementItem{{Label: "FR1"}},
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	result = a.Validate(domain.Requirements{Title: "Empty"})
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, domain.CodeMissingID, result.Warnings[0].Code)
	assert.Equal(t, CodeNoRequirements, result.Warnings[1].Code)
}

func TestRequirementLabel(t *testing.T) {
	assert.True(t, requirementLabel("FR1"))
	assert.True(t, requirementLabel("NFR12"))
	assert.False(t, requirementLabel("FR"))
	assert.False(t, requirementLabel("Overview"))
	assert.False(t, requirementLabel("FR1a"))
}
