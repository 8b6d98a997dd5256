// Package processes adapts the business-processes component: BPMN 2.0
// workflow definitions under input/process.
//
// Only the process id and name are decomposed. The XML document is
// retained verbatim so the serialize/parse round trip is byte-exact
// and downstream renderers see the author's original file.
package processes

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
var _ driven.ComponentAdapter[domain.BusinessProcess] = (*Adapter)(nil)

const dir = "input/process"

// bpmnSkeleton is the minimal executable-false process written when a
// payload carries no XML of its own: one process, one start event.
const bpmnSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" id="Definitions_%s" targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:process id="%s" name="%s" isExecutable="false">
    <bpmn:startEvent id="StartEvent_1" />
  </bpmn:process>
</bpmn:definitions>
`

// Adapter handles business-process BPMN files.
type Adapter struct{}

// New creates a new business-processes adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComponentType identifies the kind this adapter serves.
func (a *Adapter) ComponentType() domain.ComponentType {
	return domain.TypeBusinessProcesses
}

// Directory returns the component's directory under the DAK root.
func (a *Adapter) Directory() string {
	return dir
}

// Owns reports whether path is a BPMN file.
func (a *Adapter) Owns(path string) bool {
	return strings.HasPrefix(path, dir+"/") && strings.HasSuffix(path, ".bpmn")
}

// FilePath returns input/process/<id>.bpmn.
func (a *Adapter) FilePath(payload domain.BusinessProcess) string {
	return dir + "/" + ident.FileID(payload.ID, payload.Name) + ".bpmn"
}

// Serialize returns the retained XML verbatim when present; otherwise
// it renders the minimal skeleton around the process id and name.
func (a *Adapter) Serialize(payload domain.BusinessProcess) (string, error) {
	if payload.BPMNXML != "" {
		return payload.BPMNXML, nil
	}
	id := ident.FileID(payload.ID, payload.Name)
	return fmt.Sprintf(bpmnSkeleton, escapeAttr(id), escapeAttr(payload.ID), escapeAttr(payload.Name)), nil
}

// Parse extracts the process id and name from the first process
// element and retains the full XML verbatim. Undecodable XML does not
// fail Parse; Validate reports it instead.
func (a *Adapter) Parse(path, content string) (domain.BusinessProcess, error) {
	payload := domain.BusinessProcess{BPMNXML: content}
	payload.ID, payload.Name = extractElement(content, "process")
	if payload.ID == "" {
		payload.ID = ident.FromPath(path, "")
	}
	return payload, nil
}

// Validate errors on malformed XML (unbalanced definitions) and warns
// on a missing process id.
func (a *Adapter) Validate(payload domain.BusinessProcess) domain.ValidationResult {
	result := domain.NewValidationResult()
	component := payload.Name
	if component == "" {
		component = payload.ID
	}

	if payload.ID == "" {
		result.AddWarning(domain.CodeMissingID, "business process has no id", component)
	}
	if payload.BPMNXML != "" {
		if err := checkWellFormed(payload.BPMNXML); err != nil {
			result.AddError(domain.CodeMalformedXML, fmt.Sprintf("malformed BPMN: %v", err), component)
		}
	}
	return result
}

// extractElement returns the id and name attributes of the first
// element with the given local name, ignoring namespace prefixes.
func extractElement(content, local string) (id, name string) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", ""
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != local {
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
