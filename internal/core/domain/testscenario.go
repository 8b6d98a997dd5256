package domain

// TestCase is one case within a test scenario.
type TestCase struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// TestScenario is the parsed form of a test scenario stored as JSON.
type TestScenario struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	TestCases []TestCase `json:"testCases,omitempty"`
}

// ComponentID returns the component's id, or "" when absent.
func (t TestScenario) ComponentID() string { return t.ID }

// DisplayName returns the title when set, falling back to the name.
func (t TestScenario) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}
