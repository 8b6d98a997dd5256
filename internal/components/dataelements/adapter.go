// Package dataelements adapts the core-data-elements component: JSON
// vocabulary artifact definitions under input/vocabulary.
package dataelements

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.CoreDataElement] = (*Adapter)(nil)

const (
	dir = "input/vocabulary"

	// CodeMissingType errors when the artifact kind is absent.
	CodeMissingType = "MISSING_TYPE"

	// CodeInvalidType errors when the artifact kind is not one of
	// valueset, codesystem, conceptmap or logicalmodel.
	CodeInvalidType = "INVALID_TYPE"
)

// Adapter handles core-data-element JSON files.
type Adapter struct{}

// New creates a new core-data-elements adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeCoreDataElements
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a vocabulary JSON file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".json")
}

// FilePath returns input/vocabulary/<id>.json.
func (a *Adapter) FilePath(payload domain.CoreDataElement) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Name) + ".json"
}

// Serialize encodes the payload as pretty-printed JSON.
func (a *Adapter) Serialize(payload domain.CoreDataElement) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode data element: %w", err)
	}
	return string(data) + "\n", nil
}

// Parse decodes the JSON document. Unlike the raw-format adapters it
// can fail: undecodable JSON is returned as an error for the caller to
// report.
func (a *Adapter) Parse(path, content string) (domain.CoreDataElement, error) {
	var payload domain.CoreDataElement
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return domain.CoreDataElement{}, fmt.Errorf("decode data element: %w", err)
	}
	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on a missing or unknown artifact type and on a
// missing or non-absolute canonical URI; a missing id is a warning.
func (a *Adapter) Validate(payload domain.CoreDataElement) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Name
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "data element has no id", component)
	}

	switch {
	case payload.Type == "":
		result.AddError(CodeMissingType, "data element has no type", component)
	case !domain.ValidDataElementType(payload.Type):
		result.AddError(CodeInvalidType,
			fmt.Sprintf("unknown type %q, want one of %s", payload.Type, strings.Join(domain.DataElementTypes, ", ")),
			component)
	}

	if !validCanonical(payload.Canonical) {
		result.AddError(domain.CodeInvalidCanonical,
			fmt.Sprintf("canonical %q is not a valid absolute URI", payload.Canonical), component)
	}
	return result
}

// validCanonical accepts absolute URIs only.
func validCanonical(canonical string) bool {
	if canonical == "" {
		return false
	}
	u, err := url.Parse(canonical)
	return err == nil && u.IsAbs()
}
