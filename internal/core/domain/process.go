package domain

// BusinessProcess is the parsed form of a business-process workflow.
// Only the process id and name are decomposed; the BPMN 2.0 XML is
// retained verbatim for round-tripping and downstream rendering.
type BusinessProcess struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	// BPMNXML is the full BPMN 2.0 document text.
	BPMNXML string `json:"bpmnXml,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (b BusinessProcess) ComponentID() string { return b.ID }
