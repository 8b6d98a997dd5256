package domain

// RequirementItem is a single functional or non-functional requirement.
type RequirementItem struct {
	// Label is the section label, e.g. "FR1" or "NFR3".
	Label string `json:"label,omitempty"`

	// Description is the requirement text.
	Description string `json:"description,omitempty"`
}

// Requirements is the parsed form of a requirements page: a Markdown
// document with "### FR<n>" and "### NFR<n>" sections.
type Requirements struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`

	Functional    []RequirementItem `json:"functional,omitempty"`
	NonFunctional []RequirementItem `json:"nonFunctional,omitempty"`

	// Markdown retains the original document text verbatim.
	Markdown string `json:"markdown,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (r Requirements) ComponentID() string { return r.ID }
