package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakforge/dakforge/internal/adapters/driven/storage/memory"
)

func TestComponentTypesCmd(t *testing.T) {
	withTestService(t, memory.NewStore())

	out, err := execute(t, "component", "types")

	assert.NoError(t, err)
	assert.Contains(t, out, "genericPersonas")
	assert.Contains(t, out, "businessProcesses")
}

func TestComponentListCmd(t *testing.T) {
	storage := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, storage.SaveFile(ctx, "who", "anc-dak", "main",
		"input/fsh/actors/Nurse.fsh", "Instance: Nurse\nTitle: \"Nurse\"\n"))
	require.NoError(t, storage.SaveFile(ctx, "who", "anc-dak", "main",
		"input/process/Proc_1.bpmn", "<definitions/>"))
	withTestService(t, storage)

	out, err := execute(t, "component", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "genericPersonas (1)")
	assert.Contains(t, out, "file      input/fsh/actors/Nurse.fsh")
	assert.Contains(t, out, "businessProcesses (1)")
	assert.Contains(t, out, "Total: 2 source(s)")
}

func TestComponentListCmd_FilterByType(t *testing.T) {
	storage := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, storage.SaveFile(ctx, "who", "anc-dak", "main",
		"input/fsh/actors/Nurse.fsh", "Instance: Nurse\nTitle: \"Nurse\"\n"))
	withTestService(t, storage)

	out, err := execute(t, "component", "list", "genericPersonas")

	assert.NoError(t, err)
	assert.Contains(t, out, "genericPersonas (1)")
	assert.NotContains(t, out, "businessProcesses")
}

func TestComponentListCmd_UnknownType(t *testing.T) {
	withTestService(t, memory.NewStore())

	_, err := execute(t, "component", "list", "nonsense")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component type")
}
