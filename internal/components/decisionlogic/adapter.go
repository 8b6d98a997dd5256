// Package decisionlogic adapts the decision-support component: DMN 1.3
// decision tables under input/decision-support.
//
// Only the decision id and name are decomposed. The XML document is
// retained verbatim so the serialize/parse round trip is byte-exact.
package decisionlogic

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dakforge/dakforge/internal/components/ident"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ComponentAdapter[domain.DecisionLogic] = (*Adapter)(nil)

const dir = "input/decision-support"

// dmnSkeleton is the minimal decision written when a payload carries no
// XML of its own: one decision holding an empty decision table.
const dmnSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="https://www.omg.org/spec/DMN/20191111/MODEL/" id="Definitions_%s" name="%s" namespace="http://smart.who.int/dak/dmn">
  <decision id="%s" name="%s">
    <decisionTable id="DecisionTable_1" hitPolicy="FIRST" />
  </decision>
</definitions>
`

// Adapter handles decision-support DMN files.
type Adapter struct{}

// New creates a new decision-support adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeDecisionSupportLogic
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a DMN file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".dmn")
}

// FilePath returns input/decision-support/<id>.dmn.
func (a *Adapter) FilePath(payload domain.DecisionLogic) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Name) + ".dmn"
}

// Serialize returns the retained XML verbatim when present; otherwise
// it renders the minimal skeleton around the decision id and name.
func (a *Adapter) Serialize(payload domain.DecisionLogic) (string, error) {
	if payload.DMNXML != "" {
		return payload.DMNXML, nil
	}
	id := ident.FileID(payload.ID, payload.Name)
	name := escapeAttr(payload.Name)
	return fmt.Sprintf(dmnSkeleton, escapeAttr(id), name, escapeAttr(payload.ID), name), nil
}

// Parse extracts the decision id and name from the first decision
// element and retains the full XML verbatim. Undecodable XML does not
// fail Parse; Validate reports it instead.
func (a *Adapter) Parse(path, content string) (domain.DecisionLogic, error) {
	payload := domain.DecisionLogic{DMNXML: content}
	payload.ID, payload.Name = extractDecision(content)
	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on malformed XML (unbalanced definitions) and warns
// on a missing decision id.
func (a *Adapter) Validate(payload domain.DecisionLogic) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Name
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "decision table has no id", component)
	}
	if payload.DMNXML != "" {
		if err := checkWellFormed(payload.DMNXML); err != nil {
			result.AddError(domain.CodeMalformedXML, fmt.Sprintf("malformed DMN: %v", err), component)
		}
	}
	return result
}

// extractDecision returns the id and name attributes of the first
// decision element, ignoring namespace prefixes.
func extractDecision(content string) (id, name string) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", ""
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "decision" {
			continue
		}
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "id":
				id = attr.Value
			case "name":
				name = attr.Value
			}
		}
		return id, name
	}
}

// checkWellFormed walks the full token stream; unbalanced or otherwise
// undecodable XML surfaces as the decoder's syntax error.
func checkWellFormed(content string) error {
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// escapeAttr escapes the XML attribute metacharacters.
func escapeAttr(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
