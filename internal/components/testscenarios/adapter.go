// Package testscenarios adapts the test-scenarios component: JSON
// test definitions under input/tests.
package testscenarios

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.TestScenario] = (*Adapter)(nil)

const (
	dir = "input/tests"

	// CodeNoTestCases warns when a scenario defines no test cases.
	CodeNoTestCases = "NO_TEST_CASES"
)

// Adapter handles test-scenario JSON files.
type Adapter struct{}

// New creates a new test-scenarios adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeTestScenarios
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a test-scenario JSON file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".json")
}

// FilePath returns input/tests/<id>.json.
func (a *Adapter) FilePath(payload domain.TestScenario) string {
	return dir + "/" + ident.FileID(payload.ID, payload.DisplayName()) + ".json"
}

// Serialize encodes the payload as pretty-printed JSON.
func (a *Adapter) Serialize(payload domain.TestScenario) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode test scenario: %w", err)
	}
	return string(data) + "\n", nil
}

// Parse decodes the JSON document; undecodable JSON is an error for
// the caller to report.
func (a *Adapter) Parse(path, content string) (domain.TestScenario, error) {
	var payload domain.TestScenario
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return domain.TestScenario{}, fmt.Errorf("decode test scenario: %w", err)
	}
	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on a scenario with neither title nor name, warns
// when it has no test cases, and warns on a missing id.
func (a *Adapter) Validate(payload domain.TestScenario) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.DisplayName()
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "test scenario has no id", component)
	}
	if payload.Name == "" && payload.Title == "" {
		result.AddError(domain.CodeMissingName, "test scenario has no title or name", component)
	}
	if len(payload.TestCases) == 0 {
		result.AddWarning(CodeNoTestCases, "scenario defines no test cases", component)
	}
	return result
}
