package domain

// UserScenario is the parsed form of a user-scenario narrative: a
// Markdown document with "## Actors" and "## Steps" sections.
type UserScenario struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`

	// Actors lists the personas taking part in the scenario.
	Actors []string `json:"actors,omitempty"`

	// Steps lists the narrative steps in order.
	Steps []string `json:"steps,omitempty"`

	// Markdown retains the original document text verbatim.
	Markdown string `json:"markdown,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (s UserScenario) ComponentID() string { return s.ID }
