package domain

// Indicator is the parsed form of a program indicator stored as JSON.
type Indicator struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Numerator and Denominator describe how the indicator is computed.
	Numerator   string `json:"numerator,omitempty"`
	Denominator string `json:"denominator,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (i Indicator) ComponentID() string { return i.ID }

// DisplayName returns the title when set, falling back to the name.
func (i Indicator) DisplayName() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}
