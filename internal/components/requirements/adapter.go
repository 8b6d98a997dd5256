// Package requirements adapts the requirements component: Markdown
// pages under input/requirements with "### FR<n>" and "### NFR<n>"
// sections for functional and non-functional requirements.
package requirements

import (
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.Requirements] = (*Adapter)(nil)

const (
	dir = "input/requirements"

	// CodeNoRequirements warns when both requirement lists are empty.
	CodeNoRequirements = "NO_REQUIREMENTS"
)

// Adapter handles requirements Markdown files.
type Adapter struct{}

// New creates a new requirements adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeRequirements
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a requirements Markdown file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".md")
}

// FilePath returns input/requirements/<id>.md.
func (a *Adapter) FilePath(payload domain.Requirements) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Title) + ".md"
}

// Serialize returns the retained Markdown verbatim when present;
// otherwise it renders one "### <label>" section per requirement.
func (a *Adapter) Serialize(payload domain.Requirements) (string, error) {
	if payload.Markdown != "" {
		return payload.Markdown, nil
	}

	var b strings.Builder
	if payload.Title != "" {
		b.WriteString("# " + payload.Title + "\n")
	}
	writeItems := func(items []domain.RequirementItem) {
		for _, item := range items {
			b.WriteString("\n### " + item.Label + "\n\n")
			if item.Description != "" {
				b.WriteString(item.Description + "\n")
			}
		}
	}
	writeItems(payload.Functional)
	writeItems(payload.NonFunctional)
	return b.String(), nil
}

// Parse scans "### FR<n>" and "### NFR<n>" sections into the
// functional and non-functional lists. Section body text up to the
// next heading becomes the requirement description. The full Markdown
// is retained verbatim.
func (a *Adapter) Parse(path, content string) (domain.Requirements, error) {
	payload := domain.Requirements{
		ID:       ident.FromPath(path, ""),
		Markdown: content,
	}

	var label string
	var body []string
	flush := func() {
		if label == "" {
			return
		}
		item := domain.RequirementItem{
			Label:       label,
			Description: strings.TrimSpace(strings.Join(body, "\n")),
		}
		if strings.HasPrefix(label, "NFR") {
			payload.NonFunctional = append(payload.NonFunctional, item)
		} else {
			payload.Functional = append(payload.Functional, item)
		}
		label = ""
		body = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "### "):
			flush()
			section := strings.TrimSpace(strings.TrimPrefix(trimmed, "###"))
			if requirementLabel(section) {
				label = section
			}
		case strings.HasPrefix(trimmed, "# ") && payload.Title == "":
			payload.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		case strings.HasPrefix(trimmed, "#"):
			flush()
		default:
			if label != "" {
				body = append(body, trimmed)
			}
		}
	}
	flush()
	return payload, nil
}

// Validate warns on a missing id and when the page defines no
// requirements at all.
func (a *Adapter) Validate(payload domain.Requirements) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Title

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "requirements page has no id", component)
	}
	if len(payload.Functional) == 0 && len(payload.NonFunctional) == 0 {
		result.AddWarning(CodeNoRequirements, "page defines no requirements", component)
	}
	return result
}

// requirementLabel reports whether section is an FR<n> or NFR<n> label.
func requirementLabel(section string) bool {
	rest := strings.TrimPrefix(strings.TrimPrefix(section, "N"), "FR")
	if rest == section || rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}
