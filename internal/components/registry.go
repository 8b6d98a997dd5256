// Package components bundles the nine concrete component adapters for
// injection into the DAK service.
package components

import (
	"github.com/dakforge/dakforge/internal/components/dataelements"
	"github.com/dakforge/dakforge/internal/components/decisionlogic"
	"github.com/dakforge/dakforge/internal/components/indicators"
	"github.com/dakforge/dakforge/internal/components/interventions"
	"github.com/dakforge/dakforge/internal/components/personas"
	"github.com/dakforge/dakforge/internal/components/processes"
	"github.com/dakforge/dakforge/internal/components/requirements"
	"github.com/dakforge/dakforge/internal/components/scenarios"
	"github.com/dakforge/dakforge/internal/components/testscenarios"
	"github.com/dakforge/dakforge/internal/core/services"
)

// Default returns the standard adapter bundle covering all nine DAK
// component kinds.
func Default() services.Adapters {
	return services.Adapters{
		HealthInterventions:  interventions.New(),
		GenericPersonas:      personas.New(),
		UserScenarios:        scenarios.New(),
		BusinessProcesses:    processes.New(),
		CoreDataElements:     dataelements.New(),
		DecisionSupportLogic: decisionlogic.New(),
		ProgramIndicators:    indicators.New(),
		Requirements:         requirements.New(),
		TestScenarios:        testscenarios.New(),
	}
}
