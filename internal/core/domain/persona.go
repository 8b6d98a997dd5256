package domain

// Persona is the parsed form of a generic persona defined in FHIR
// Shorthand (an ActorDefinition instance).
type Persona struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// FSH retains the original FHIR Shorthand text verbatim.
	FSH string `json:"fsh,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (p Persona) ComponentID() string { return p.ID }
