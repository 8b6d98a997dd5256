// Package scenarios adapts the user-scenarios component: Markdown
// narratives under input/scenarios with Actors and Steps sections.
package scenarios

import (
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.UserScenario] = (*Adapter)(nil)

const (
	dir = "input/scenarios"

	// CodeNoActors warns when a scenario names no actors.
	CodeNoActors = "NO_ACTORS"

	// CodeNoSteps warns when a scenario has no steps.
	CodeNoSteps = "NO_STEPS"
)

// Adapter handles user-scenario Markdown files.
type Adapter struct{}

// New creates a new user-scenarios adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeUserScenarios
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a scenario Markdown file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".md")
}

// FilePath returns input/scenarios/<id>.md.
func (a *Adapter) FilePath(payload domain.UserScenario) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Title) + ".md"
}

// Serialize returns the retained Markdown verbatim when present;
// otherwise it renders the title, Actors and Steps sections.
func (a *Adapter) Serialize(payload domain.UserScenario) (string, error) {
	if payload.Markdown != "" {
		return payload.Markdown, nil
	}

	var b strings.Builder
	if payload.Title != "" {
		b.WriteString("# " + payload.Title + "\n")
	}
	if len(payload.Actors) > 0 {
		b.WriteString("\n## Actors\n\n")
		for _, actor := range payload.Actors {
			b.WriteString("- " + actor + "\n")
		}
	}
	if len(payload.Steps) > 0 {
		b.WriteString("\n## Steps\n\n")
		for _, step := range payload.Steps {
			b.WriteString("- " + step + "\n")
		}
	}
	return b.String(), nil
}

// Parse scans the document heading plus the "## Actors" and "## Steps"
// sections. List items may be bulleted or numbered. The full Markdown
// is retained verbatim.
func (a *Adapter) Parse(path, content string) (domain.UserScenario, error) {
	payload := domain.UserScenario{
		ID:       ident.FromPath(path, ""),
		Markdown: content,
	}

	section := ""
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "## "):
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "##")))
		case strings.HasPrefix(line, "# ") && payload.Title == "":
			payload.Title = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		default:
			item, ok := listItem(line)
			if !ok {
				continue
			}
			switch section {
			case "actors":
				payload.Actors = append(payload.Actors, item)
			case "steps":
				payload.Steps = append(payload.Steps, item)
			}
		}
	}
	return payload, nil
}

// Validate warns on a missing id and on empty Actors or Steps sections.
func (a *Adapter) Validate(payload domain.UserScenario) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Title

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "user scenario has no id", component)
	}
	if len(payload.Actors) == 0 {
		result.AddWarning(CodeNoActors, "scenario names no actors", component)
	}
	if len(payload.Steps) == 0 {
		result.AddWarning(CodeNoSteps, "scenario has no steps", component)
	}
	return result
}

// listItem extracts the text of a bulleted or numbered list line.
func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			continue
		}
		if line[i] == '.' && i > 0 && i+1 < len(line) && line[i+1] == ' ' {
			return strings.TrimSpace(line[i+2:]), true
		}
		break
	}
	return "", false
}
