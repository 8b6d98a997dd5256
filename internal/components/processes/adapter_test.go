package processes

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/adapters/driven/storage/memory"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/services"
)

func TestAdapter_Owns(t *testing.T) {
	a := New()

	assert.True(t, a.Owns("input/process/Proc_1.bpmn"))
	assert.False(t, a.Owns("input/process/readme.md"))
	assert.False(t, a.Owns("input/decision-support/table.dmn"))
}

func TestAdapter_Serialize_RendersSkeleton(t *testing.T) {
	a := New()

	content, err := a.Serialize(domain.BusinessProcess{ID: "Proc_1", Name: "Register Patient"})

	require.NoError(t, err)
	assert.Contains(t, content, `<bpmn:process id="Proc_1" name="Register Patient" isExecutable="false">`)
	assert.Equal(t, 1, strings.Count(content, "StartEvent_1"))
	assert.Contains(t, content, `xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"`)
}

func TestAdapter_Serialize_EscapesAttributes(t *testing.T) {
	a := New()

	content, err := a.Serialize(domain.BusinessProcess{ID: "Proc_1", Name: `Triage & "Refer"`})

	require.NoError(t, err)
	assert.Contains(t, content, `name="Triage &amp; &quot;Refer&quot;"`)
}

func TestAdapter_Serialize_RetainsExistingXML(t *testing.T) {
	a := New()
	xml := "<bpmn:definitions><bpmn:process id=\"P\"/></bpmn:definitions>"

	content, err := a.Serialize(domain.BusinessProcess{ID: "P", BPMNXML: xml})

	require.NoError(t, err)
	assert.Equal(t, xml, content)
}

func TestAdapter_Parse_ExtractsProcessAttributes(t *testing.T) {
	a := New()
	skeleton, err := a.Serialize(domain.BusinessProcess{ID: "Proc_1", Name: "Register Patient"})
	require.NoError(t, err)

	payload, err := a.Parse("input/process/Proc_1.bpmn", skeleton)

	require.NoError(t, err)
	assert.Equal(t, "Proc_1", payload.ID)
	assert.Equal(t, "Register Patient", payload.Name)
	assert.Equal(t, skeleton, payload.BPMNXML)
}

func TestAdapter_Parse_FallsBackToFilename(t *testing.T) {
	a := New()

	payload, err := a.Parse("input/process/triage.bpmn", "<definitions/>")

	require.NoError(t, err)
	assert.Equal(t, "triage", payload.ID)
}

func TestAdapter_Validate_MalformedXML(t *testing.T) {
	a := New()

	result := a.Validate(domain.BusinessProcess{ID: "P", BPMNXML: "<definitions><process></definitions>"})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.CodeMalformedXML, result.Errors[0].Code)
}

func TestAdapter_Validate_MissingIDIsWarning(t *testing.T) {
	a := New()

	result := a.Validate(domain.BusinessProcess{Name: "Register Patient"})

	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.CodeMissingID, result.Warnings[0].Code)
}

func TestAdapter_SaveThroughCollection(t *testing.T) {
	storage := memory.NewStore()
	repo := domain.Repository{Owner: "who", Repo: "anc-dak", Branch: "main"}
	c := services.NewCollection(repo, services.NewResolver(storage), storage, New())
	ctx := context.Background()

	err := c.Save(ctx, domain.BusinessProcess{ID: "Proc_1", Name: "Register Patient"}, services.SaveOptions{Mode: services.SaveFile})
	require.NoError(t, err)

	content, err := storage.LoadFile(ctx, "who", "anc-dak", "main", "input/process/Proc_1.bpmn")
	require.NoError(t, err)
	assert.Contains(t, content, `<bpmn:process id="Proc_1" name="Register Patient" isExecutable="false">`)

	reloaded, err := c.RetrieveByID(ctx, "Proc_1")
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Register Patient", reloaded.Name)
	assert.Equal(t, content, reloaded.BPMNXML)
}
