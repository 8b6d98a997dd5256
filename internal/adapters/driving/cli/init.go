package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/services"
)

var (
	initIDFlag    string
	initNameFlag  string
	initTitleFlag string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create input/dak.json in the configured repository",
	Long: `Writes a fresh input/dak.json with the DAK metadata and empty
component lists. Fails if the file already exists.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initIDFlag, "id", "", "DAK identifier (defaults to the repository name)")
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "DAK short name")
	initCmd.Flags().StringVar(&initTitleFlag, "title", "", "DAK human-readable title")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if dakService == nil {
		return errors.New("dak service not configured")
	}
	ctx := cmd.Context()

	existing, err := dakService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", services.DAKFilePath, err)
	}
	if existing != nil {
		return fmt.Errorf("%s already exists in %s", services.DAKFilePath, dakService.Repository())
	}

	dak := &domain.DAK{
		ID:     initIDFlag,
		Name:   initNameFlag,
		Title:  initTitleFlag,
		Status: "draft",
	}
	if dak.ID == "" {
		dak.ID = dakService.Repository().Repo
	}

	if err := dakService.Save(ctx, dak); err != nil {
		return fmt.Errorf("failed to write %s: %w", services.DAKFilePath, err)
	}

	cmd.Printf("Initialised %s in %s\n", services.DAKFilePath, dakService.Repository())
	return nil
}
