// Package personas adapts the generic-personas component: FHIR
// Shorthand ActorDefinition instances under input/fsh/actors.
package personas

import (
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.Persona] = (*Adapter)(nil)

const dir = "input/fsh/actors"

// Adapter handles generic-persona FSH files.
type Adapter struct{}

// New creates a new personas adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeGenericPersonas
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is an actor FSH file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".fsh")
}

// FilePath returns input/fsh/actors/<id>.fsh.
func (a *Adapter) FilePath(payload domain.Persona) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Title) + ".fsh"
}

// Serialize returns the retained FSH verbatim when present; otherwise
// it renders a minimal ActorDefinition instance.
func (a *Adapter) Serialize(payload domain.Persona) (string, error) {
	if payload.FSH != "" {
		return payload.FSH, nil
	}

	var b strings.Builder
	b.WriteString("Instance: " + payload.ID + "\n")
	b.WriteString("InstanceOf: ActorDefinition\n")
	b.WriteString("Usage: #definition\n")
	if payload.Title != "" {
		b.WriteString("Title: \"" + payload.Title + "\"\n")
	}
	if payload.Description != "" {
		b.WriteString("Description: \"" + payload.Description + "\"\n")
	}
	return b.String(), nil
}

// Parse scans the FSH line prefixes Instance:, Title: and Description:.
// The full FSH text is retained verbatim.
func (a *Adapter) Parse(path, content string) (domain.Persona, error) {
	payload := domain.Persona{FSH: content}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Instance:"):
			payload.ID = strings.TrimSpace(strings.TrimPrefix(line, "Instance:"))
		case strings.HasPrefix(line, "Title:"):
			payload.Title = unquote(strings.TrimSpace(strings.TrimPrefix(line, "Title:")))
		case strings.HasPrefix(line, "Description:"):
			payload.Description = unquote(strings.TrimSpace(strings.TrimPrefix(line, "Description:")))
		}
	}

	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on a persona without a title and warns on a missing id.
func (a *Adapter) Validate(payload domain.Persona) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Title
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "persona has no id", component)
	}
	if payload.Title == "" {
		result.AddError(domain.CodeMissingName, "persona has no name or title", component)
	}
	return result
}

// unquote strips one pair of surrounding double quotes, matching the
// FSH string syntax.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
