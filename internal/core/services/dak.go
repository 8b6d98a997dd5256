package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
	"github.com/dakforge/dakforge/internal/logger"
)

// DAKFilePath is the aggregate metadata file inside a DAK repository.
const DAKFilePath = "input/dak.json"

// Adapters bundles the nine component adapters injected into a
// DAKService. Every field is required.
type Adapters struct {
	HealthInterventions  driven.ComponentAdapter[domain.HealthInterventions]
	GenericPersonas      driven.ComponentAdapter[domain.Persona]
	UserScenarios        driven.ComponentAdapter[domain.UserScenario]
	BusinessProcesses    driven.ComponentAdapter[domain.BusinessProcess]
	CoreDataElements     driven.ComponentAdapter[domain.CoreDataElement]
	DecisionSupportLogic driven.ComponentAdapter[domain.DecisionLogic]
	ProgramIndicators    driven.ComponentAdapter[domain.Indicator]
	Requirements         driven.ComponentAdapter[domain.Requirements]
	TestScenarios        driven.ComponentAdapter[domain.TestScenario]
}

// DAKService owns one Collection per component kind plus the
// input/dak.json lifecycle for one repository scope.
type DAKService struct {
	repo     domain.Repository
	storage  driven.Storage
	resolver *Resolver

	interventions *Collection[domain.HealthInterventions]
	personas      *Collection[domain.Persona]
	scenarios     *Collection[domain.UserScenario]
	processes     *Collection[domain.BusinessProcess]
	dataElements  *Collection[domain.CoreDataElement]
	decisions     *Collection[domain.DecisionLogic]
	indicators    *Collection[domain.Indicator]
	requirements  *Collection[domain.Requirements]
	testScenarios *Collection[domain.TestScenario]
}

// NewDAKService creates the aggregate service with its nine
// collections, all bound to the same repository and storage.
func NewDAKService(repo domain.Repository, storage driven.Storage, adapters Adapters) *DAKService {
	resolver := NewResolver(storage)
	return &DAKService{
		repo:          repo,
		storage:       storage,
		resolver:      resolver,
		interventions: NewCollection(repo, resolver, storage, adapters.HealthInterventions),
		personas:      NewCollection(repo, resolver, storage, adapters.GenericPersonas),
		scenarios:     NewCollection(repo, resolver, storage, adapters.UserScenarios),
		processes:     NewCollection(repo, resolver, storage, adapters.BusinessProcesses),
		dataElements:  NewCollection(repo, resolver, storage, adapters.CoreDataElements),
		decisions:     NewCollection(repo, resolver, storage, adapters.DecisionSupportLogic),
		indicators:    NewCollection(repo, resolver, storage, adapters.ProgramIndicators),
		requirements:  NewCollection(repo, resolver, storage, adapters.Requirements),
		testScenarios: NewCollection(repo, resolver, storage, adapters.TestScenarios),
	}
}

// Repository returns the service's storage scope.
func (s *DAKService) Repository() domain.Repository { return s.repo }

// Resolver returns the shared source resolver.
func (s *DAKService) Resolver() *Resolver { return s.resolver }

// Collection accessors, one per component kind.

func (s *DAKService) Interventions() *Collection[domain.HealthInterventions] {
	return s.interventions
}
func (s *DAKService) Personas() *Collection[domain.Persona]           { return s.personas }
func (s *DAKService) Scenarios() *Collection[domain.UserScenario]     { return s.scenarios }
func (s *DAKService) Processes() *Collection[domain.BusinessProcess]  { return s.processes }
func (s *DAKService) DataElements() *Collection[domain.CoreDataElement] {
	return s.dataElements
}
func (s *DAKService) Decisions() *Collection[domain.DecisionLogic] { return s.decisions }
func (s *DAKService) Indicators() *Collection[domain.Indicator]    { return s.indicators }
func (s *DAKService) Requirements() *Collection[domain.Requirements] {
	return s.requirements
}
func (s *DAKService) TestScenarios() *Collection[domain.TestScenario] {
	return s.testScenarios
}

// Load reads input/dak.json. A missing file is not an error: the
// method returns (nil, nil) so callers can start a fresh DAK.
func (s *DAKService) Load(ctx context.Context) (*domain.DAK, error) {
	content, err := s.storage.LoadFile(ctx, s.repo.Owner, s.repo.Repo, s.repo.Branch, DAKFilePath)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			logger.Debug("no dak.json in %s", s.repo)
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", DAKFilePath, err)
	}

	var dak domain.DAK
	if err := json.Unmarshal([]byte(content), &dak); err != nil {
		return nil, fmt.Errorf("decode %s: %w", DAKFilePath, err)
	}
	return &dak, nil
}

// Save writes the whole aggregate to input/dak.json, pretty-printed
// with two-space indentation. The file is always overwritten in full.
func (s *DAKService) Save(ctx context.Context, dak *domain.DAK) error {
	if dak == nil {
		return domain.ErrInvalidInput
	}
	data, err := json.MarshalIndent(dak, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", DAKFilePath, err)
	}
	content := string(data) + "\n"
	if err := s.storage.SaveFile(ctx, s.repo.Owner, s.repo.Repo, s.repo.Branch, DAKFilePath, content); err != nil {
		return fmt.Errorf("save %s: %w", DAKFilePath, err)
	}
	return nil
}

// Seed registers the aggregate's inline component payloads as inline
// sources on their collections. Called after Load when editing an
// existing DAK.
func (s *DAKService) Seed(dak *domain.DAK) {
	if dak == nil {
		return
	}
	for _, p := range dak.HealthInterventions {
		s.interventions.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.GenericPersonas {
		s.personas.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.UserScenarios {
		s.scenarios.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.BusinessProcesses {
		s.processes.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.CoreDataElements {
		s.dataElements.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.DecisionSupportLogic {
		s.decisions.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.ProgramIndicators {
		s.indicators.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.Requirements {
		s.requirements.AddSource(domain.InlineSource(p))
	}
	for _, p := range dak.TestScenarios {
		s.testScenarios.AddSource(domain.InlineSource(p))
	}
}

// Discover populates every collection's source list from the files
// present under its component directory.
func (s *DAKService) Discover(ctx context.Context) error {
	discoverers := []func(context.Context) error{
		s.interventions.Discover,
		s.personas.Discover,
		s.scenarios.Discover,
		s.processes.Discover,
		s.dataElements.Discover,
		s.decisions.Discover,
		s.indicators.Discover,
		s.requirements.Discover,
		s.testScenarios.Discover,
	}
	for _, discover := range discoverers {
		if err := discover(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll validates every component of every kind and returns one
// combined report. A bad file never stops the batch, so the report is
// complete even when several components are broken.
func (s *DAKService) ValidateAll(ctx context.Context) domain.ValidationResult {
	result := domain.NewValidationResult()
	result.Merge(s.interventions.ValidateAll(ctx))
	result.Merge(s.personas.ValidateAll(ctx))
	result.Merge(s.scenarios.ValidateAll(ctx))
	result.Merge(s.processes.ValidateAll(ctx))
	result.Merge(s.dataElements.ValidateAll(ctx))
	result.Merge(s.decisions.ValidateAll(ctx))
	result.Merge(s.indicators.ValidateAll(ctx))
	result.Merge(s.requirements.ValidateAll(ctx))
	result.Merge(s.testScenarios.ValidateAll(ctx))
	return result
}

// CanCommit reports whether the DAK may be marked ready to commit:
// no error-level issues anywhere. Warnings never block.
func (s *DAKService) CanCommit(result domain.ValidationResult) bool {
	return result.IsValid
}
