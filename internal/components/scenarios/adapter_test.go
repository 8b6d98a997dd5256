package scenarios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/core/domain"
)

func TestAdapter_Owns(t *testing.T) {
	a := New()

	assert.True(t, a.Owns("input/scenarios/anc-first-contact.md"))
	assert.False(t, a.Owns("input/scenarios/diagram.bpmn"))
	assert.False(t, a.Owns("input/pagecontent/anc.md"))
}

func TestAdapter_Parse_Sections(t *testing.T) {
	a := New()
	md := `# First ANC Contact

## Actors

- Pregnant woman
- Midwife

## Steps

1. Woman arrives at the clinic
2. Midwife records medical history
3. Midwife schedules next contact
`

	payload, err := a.Parse("input/scenarios/anc-first-contact.md", md)

	require.NoError(t, err)
	assert.Equal(t, "anc-first-contact", payload.ID)
	assert.Equal(t, "First ANC Contact", payload.Title)
	assert.Equal(t, []string{"Pregnant woman", "Midwife"}, payload.Actors)
	require.Len(t, payload.Steps, 3)
	assert.Equal(t, "Midwife records medical history", payload.Steps[1])
	assert.Equal(t, md, payload.Markdown)
}

func TestAdapter_Parse_ListItemsOutsideSectionsAreIgnored(t *testing.T) {
	a := New()
	md := "# Scenario\n\n- stray bullet\n\n## Actors\n\n- Midwife\n"

	payload, err := a.Parse("input/scenarios/s.md", md)

	require.NoError(t, err)
	assert.Equal(t, []string{"Midwife"}, payload.Actors)
	assert.Empty(t, payload.Steps)
}

func TestAdapter_SerializeParse_RoundTrip(t *testing.T) {
	a := New()
	original := domain.UserScenario{
		ID:     "anc-first-contact",
		Title:  "First ANC Contact",
		Actors: []string{"Pregnant woman", "Midwife"},
		Steps:  []string{"Arrive", "Record history"},
	}

	content, err := a.Serialize(original)
	require.NoError(t, err)

	parsed, err := a.Parse(a.FilePath(original), content)
	require.NoError(t, err)
	assert.Equal(t, original.Title, parsed.Title)
	assert.Equal(t, original.Actors, parsed.Actors)
	assert.Equal(t, original.Steps, parsed.Steps)
}

func TestAdapter_Validate(t *testing.T) {
	a := New()

	result := a.Validate(domain.UserScenario{
		ID:     "s1",
		Title:  "Scenario",
		Actors: []string{"Midwife"},
		Steps:  []string{"Arrive"},
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)

	result = a.Validate(domain.UserScenario{Title: "Scenario"})
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 3)
	codes := []string{result.Warnings[0].Code, result.Warnings[1].Code, result.Warnings[2].Code}
	assert.Equal(t, []string{domain.CodeMissingID, CodeNoActors, CodeNoSteps}, codes)
}
