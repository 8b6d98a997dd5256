package domain

// ComponentType identifies one of the nine DAK component kinds.
// The value doubles as the JSON key used for the component's array
// in the DAK aggregate file.
type ComponentType string

const (
	// TypeHealthInterventions covers health interventions and
	// recommendations (Markdown).
	TypeHealthInterventions ComponentType = "healthInterventions"

	// TypeGenericPersonas covers generic personas (FHIR Shorthand).
	TypeGenericPersonas ComponentType = "genericPersonas"

	// TypeUserScenarios covers user scenarios (Markdown).
	TypeUserScenarios ComponentType = "userScenarios"

	// TypeBusinessProcesses covers business processes and workflows
	// (BPMN 2.0 XML).
	TypeBusinessProcesses ComponentType = "businessProcesses"

	// TypeCoreDataElements covers core data elements (JSON vocabulary).
	TypeCoreDataElements ComponentType = "coreDataElements"

	// TypeDecisionSupportLogic covers decision-support logic (DMN 1.3 XML).
	TypeDecisionSupportLogic ComponentType = "decisionSupportLogic"

	// TypeProgramIndicators covers program indicators (JSON).
	TypeProgramIndicators ComponentType = "programIndicators"

	// TypeRequirements covers functional and non-functional requirements
	// (Markdown).
	TypeRequirements ComponentType = "requirements"

	// TypeTestScenarios covers test scenarios (JSON).
	TypeTestScenarios ComponentType = "testScenarios"
)

// AllComponentTypes returns the nine component types in their canonical
// display order.
func AllComponentTypes() []ComponentType {
	return []ComponentType{
		TypeHealthInterventions,
		TypeGenericPersonas,
		TypeUserScenarios,
		TypeBusinessProcesses,
		TypeCoreDataElements,
		TypeDecisionSupportLogic,
		TypeProgramIndicators,
		TypeRequirements,
		TypeTestScenarios,
	}
}

// String returns the component type identifier.
func (t ComponentType) String() string {
	return string(t)
}

// Valid reports whether t is one of the nine known component types.
func (t ComponentType) Valid() bool {
	for _, known := range AllComponentTypes() {
		if t == known {
			return true
		}
	}
	return false
}
