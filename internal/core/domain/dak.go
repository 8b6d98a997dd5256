package domain

// DAK is the top-level Digital Adaptation Kit aggregate: shared
// publication metadata plus one array per component kind. The arrays
// hold inline payloads; file-backed components are referenced through
// each collection's source list instead.
//
// The aggregate is persisted as input/dak.json (UTF-8, pretty-printed
// with two-space indentation). Saving always overwrites the whole file.
type DAK struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Status      string `json:"status,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	License     string `json:"license,omitempty"`

	HealthInterventions  []HealthInterventions `json:"healthInterventions,omitempty"`
	GenericPersonas      []Persona             `json:"genericPersonas,omitempty"`
	UserScenarios        []UserScenario        `json:"userScenarios,omitempty"`
	BusinessProcesses    []BusinessProcess     `json:"businessProcesses,omitempty"`
	CoreDataElements     []CoreDataElement     `json:"coreDataElements,omitempty"`
	DecisionSupportLogic []DecisionLogic       `json:"decisionSupportLogic,omitempty"`
	ProgramIndicators    []Indicator           `json:"programIndicators,omitempty"`
	Requirements         []Requirements        `json:"requirements,omitempty"`
	TestScenarios        []TestScenario        `json:"testScenarios,omitempty"`
}

// ComponentCount returns the total number of inline component payloads
// across all nine arrays.
func (d *DAK) ComponentCount() int {
	return len(d.HealthInterventions) +
		len(d.GenericPersonas) +
		len(d.UserScenarios) +
		len(d.BusinessProcesses) +
		len(d.CoreDataElements) +
		len(d.DecisionSupportLogic) +
		len(d.ProgramIndicators) +
		len(d.Requirements) +
		len(d.TestScenarios)
}
