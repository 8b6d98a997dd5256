package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/services"
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Inspect DAK components",
}

var componentListCmd = &cobra.Command{
	Use:   "list [type]",
	Short: "List component sources, optionally for one type",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runComponentList,
}

var componentTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the known component types",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, kind := range domain.AllComponentTypes() {
			cmd.Println(kind)
		}
	},
}

func init() {
	componentCmd.AddCommand(componentListCmd)
	componentCmd.AddCommand(componentTypesCmd)
	rootCmd.AddCommand(componentCmd)
}

func runComponentList(cmd *cobra.Command, args []string) error {
	if dakService == nil {
		return errors.New("dak service not configured")
	}
	ctx := cmd.Context()

	var filter domain.ComponentType
	if len(args) == 1 {
		filter = domain.ComponentType(args[0])
		if !filter.Valid() {
			return fmt.Errorf("unknown component type %q, want one of: %s",
				args[0], joinTypes(domain.AllComponentTypes()))
		}
	}

	dak, err := dakService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load DAK: %w", err)
	}
	dakService.Seed(dak)

	if err := dakService.Discover(ctx); err != nil {
		return fmt.Errorf("failed to discover components: %w", err)
	}

	total := 0
	for _, section := range componentSections() {
		if filter != "" && section.kind != filter {
			continue
		}
		cmd.Printf("%s (%d)\n", section.kind, len(section.lines))
		for _, line := range section.lines {
			cmd.Printf("  %s\n", line)
		}
		total += len(section.lines)
	}

	cmd.Printf("\nTotal: %d source(s)\n", total)
	return nil
}

type componentSection struct {
	kind  domain.ComponentType
	lines []string
}

func componentSections() []componentSection {
	return []componentSection{
		{domain.TypeHealthInterventions, sourceLines(dakService.Interventions())},
		{domain.TypeGenericPersonas, sourceLines(dakService.Personas())},
		{domain.TypeUserScenarios, sourceLines(dakService.Scenarios())},
		{domain.TypeBusinessProcesses, sourceLines(dakService.Processes())},
		{domain.TypeCoreDataElements, sourceLines(dakService.DataElements())},
		{domain.TypeDecisionSupportLogic, sourceLines(dakService.Decisions())},
		{domain.TypeProgramIndicators, sourceLines(dakService.Indicators())},
		{domain.TypeRequirements, sourceLines(dakService.Requirements())},
		{domain.TypeTestScenarios, sourceLines(dakService.TestScenarios())},
	}
}

// sourceLines renders one line per source: its kind plus whatever
// locates it (path, component id or canonical URL).
func sourceLines[T domain.Payload](c *services.Collection[T]) []string {
	var lines []string
	for _, src := range c.Sources() {
		switch src.Kind() {
		case domain.SourceFile:
			lines = append(lines, "file      "+src.RelativeURL)
		case domain.SourceInline:
			lines = append(lines, "inline    "+(*src.Instance).ComponentID())
		case domain.SourceCanonical:
			lines = append(lines, "canonical "+src.Canonical)
		}
	}
	return lines
}

func joinTypes(kinds []domain.ComponentType) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}
