package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dakforge/dakforge/internal/core/domain"
)

var validateJSONFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every component in the repository",
	Long: `Discovers the component files under input/, validates each one and
prints a combined report. The command exits non-zero when any
error-level issue is found; warnings never block.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSONFlag, "json", false, "Print the report as JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if dakService == nil {
		return errors.New("dak service not configured")
	}
	ctx := cmd.Context()

	dak, err := dakService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load DAK: %w", err)
	}
	dakService.Seed(dak)

	if err := dakService.Discover(ctx); err != nil {
		return fmt.Errorf("failed to discover components: %w", err)
	}

	result := dakService.ValidateAll(ctx)

	if validateJSONFlag {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printReport(cmd, result)
	}

	if !dakService.CanCommit(result) {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}
	return nil
}

func printReport(cmd *cobra.Command, result domain.ValidationResult) {
	printIssues := func(heading string, issues []domain.ValidationIssue) {
		if len(issues) == 0 {
			return
		}
		cmd.Printf("%s:\n", heading)
		for _, issue := range issues {
			if issue.Component != "" {
				cmd.Printf("  [%s] %s: %s\n", issue.Code, issue.Component, issue.Message)
			} else {
				cmd.Printf("  [%s] %s\n", issue.Code, issue.Message)
			}
		}
		cmd.Println()
	}

	printIssues("Errors", result.Errors)
	printIssues("Warnings", result.Warnings)

	if result.IsValid {
		cmd.Printf("Valid: %d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))
	} else {
		cmd.Printf("Invalid: %d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))
	}
}
