package domain

// HealthInterventions is the parsed form of a health-interventions page:
// a Markdown document listing the interventions and recommendations the
// DAK covers.
type HealthInterventions struct {
	// ID is the optional component id.
	ID string `json:"id,omitempty"`

	// Title is the page heading.
	Title string `json:"title,omitempty"`

	// Interventions are the bullet-list entries under the heading.
	Interventions []string `json:"interventions,omitempty"`

	// Markdown retains the original document text verbatim so a
	// serialize/parse round trip reproduces the file exactly.
	Markdown string `json:"markdown,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (h HealthInterventions) ComponentID() string { return h.ID }
