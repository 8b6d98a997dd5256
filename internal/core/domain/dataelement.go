package domain

// DataElementTypes lists the FHIR vocabulary artifact kinds a core
// data element may describe.
var DataElementTypes = []string{"valueset", "codesystem", "conceptmap", "logicalmodel"}

// ValidDataElementType reports whether t is a known artifact kind.
func ValidDataElementType(t string) bool {
	for _, known := range DataElementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CoreDataElement is the parsed form of one vocabulary artifact
// definition stored as JSON.
type CoreDataElement struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	// Type is one of valueset, codesystem, conceptmap or logicalmodel.
	Type string `json:"type,omitempty"`

	// Canonical is the artifact's canonical URI.
	Canonical string `json:"canonical,omitempty"`

	Description string `json:"description,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (c CoreDataElement) ComponentID() string { return c.ID }
