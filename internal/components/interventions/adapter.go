// Package interventions adapts the health-interventions component:
// Markdown pages under input/pagecontent listing the interventions and
// recommendations the DAK covers.
package interventions

import (
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.HealthInterventions] = (*Adapter)(nil)

const (
	dir        = "input/pagecontent"
	filePrefix = "l2-dak-"

	// CodeNoInterventions warns when a page lists no interventions.
	CodeNoInterventions = "NO_INTERVENTIONS"
)

// Adapter handles health-interventions pages.
type Adapter struct{}

// New creates a new health-interventions adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeHealthInterventions
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path follows the l2-dak-<id>.md convention.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/"+filePrefix) && strings.HasSuffix(path, ".md")
}

// FilePath returns input/pagecontent/l2-dak-<id>.md.
func (a *Adapter) FilePath(payload domain.HealthInterventions) string {
	return dir + "/" + filePrefix + ident.FileID(payload.ID, payload.Title) + ".md"
}

// Serialize returns the retained Markdown verbatim when present so the
// round trip is byte-exact; otherwise it renders the heading and
// bullet list from the decomposed fields.
func (a *Adapter) Serialize(payload domain.HealthInterventions) (string, error) {
	if payload.Markdown != "" {
		return payload.Markdown, nil
	}

	var b strings.Builder
	if payload.Title != "" {
		b.WriteString("# " + payload.Title + "\n")
	}
	if len(payload.Interventions) > 0 {
		b.WriteString("\n")
		for _, item := range payload.Interventions {
			b.WriteString("- " + item + "\n")
		}
	}
	return b.String(), nil
}

// Parse scans the page for its heading and bullet-list entries. The
// full Markdown is retained verbatim. Missing pieces become empty
// defaults; Parse itself never fails.
func (a *Adapter) Parse(path, content string) (domain.HealthInterventions, error) {
	payload := domain.HealthInterventions{
		ID:       ident.FromPath(path, filePrefix),
		Markdown: content,
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# ") && payload.Title == "":
			payload.Title = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		case strings.HasPrefix(line, "- "):
			payload.Interventions = append(payload.Interventions, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "* "):
			payload.Interventions = append(payload.Interventions, strings.TrimSpace(line[2:]))
		}
	}
	return payload, nil
}

// Validate warns on a missing id and on an empty intervention list.
func (a *Adapter) Validate(payload domain.HealthInterventions) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Title

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "health interventions page has no id", component)
	}
	if len(payload.Interventions) == 0 {
		result.AddWarning(CodeNoInterventions, "page lists no interventions", component)
	}
	return result
}
