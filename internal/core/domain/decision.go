package domain

// DecisionLogic is the parsed form of a decision-support table. Only
// the decision id and name are decomposed; the DMN 1.3 XML is retained
// verbatim for round-tripping and downstream rendering.
type DecisionLogic struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	// DMNXML is the full DMN 1.3 document text.
	DMNXML string `json:"dmnXml,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (d DecisionLogic) ComponentID() string { return d.ID }
