package cli

import (
	"bytes"
	"testing"

	"github.com/dakforge/dakforge/internal/adapters/driven/storage/memory"
	"github.com/dakforge/dakforge/internal/components"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/services"
)

var testRepo = domain.Repository{Owner: "who", Repo: "anc-dak", Branch: "main"}

// withTestService wires the package-level service to an in-memory
// store for the duration of one test.
func withTestService(t *testing.T, storage *memory.Store) {
	t.Helper()
	original := dakService
	dakService = services.NewDAKService(testRepo, storage, components.Default())
	t.Cleanup(func() { dakService = original })
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}
