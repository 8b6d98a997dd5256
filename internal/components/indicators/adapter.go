// Package indicators adapts the program-indicators component: JSON
// indicator definitions under input/indicators.
package indicators

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.Indicator] = (*Adapter)(nil)

const (
	dir = "input/indicators"

	// CodeNoNumerator warns when the indicator has no numerator.
	CodeNoNumerator = "NO_NUMERATOR"

	// CodeNoDenominator warns when the indicator has no denominator.
	CodeNoDenominator = "NO_DENOMINATOR"
)

// Adapter handles program-indicator JSON files.
type Adapter struct{}

// New creates a new program-indicators adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeProgramIndicators
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is an indicator JSON file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".json")
}

// FilePath returns input/indicators/<id>.json.
func (a *Adapter) FilePath(payload domain.Indicator) string {
	return dir + "/" + ident.FileID(payload.ID, payload.DisplayName()) + ".json"
}

// Serialize encodes the payload as pretty-printed JSON.
func (a *Adapter) Serialize(payload domain.Indicator) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode indicator: %w", err)
	}
	return string(data) + "\n", nil
}

// Parse decodes the JSON document; undecodable JSON is an error for
// the caller to report.
func (a *Adapter) Parse(path, content string) (domain.Indicator, error) {
	var payload domain.Indicator
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return domain.Indicator{}, fmt.Errorf("decode indicator: %w", err)
	}
	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on an indicator with neither name nor title, warns
// on missing numerator or denominator, and warns on a missing id.
func (a *Adapter) Validate(payload domain.Indicator) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.DisplayName()
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "indicator has no id", component)
	}
	if payload.Name == "" && payload.Title == "" {
		result.AddError(domain.CodeMissingName, "indicator has no name or title", component)
	}
	if payload.Numerator == "" {
		result.AddWarning(CodeNoNumerator, "indicator has no numerator", component)
	}
	if payload.Denominator == "" {
		result.AddWarning(CodeNoDenominator, "indicator has no denominator", component)
	}
	return result
}
