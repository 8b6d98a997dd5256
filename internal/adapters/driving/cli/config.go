package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/dakforge/dakforge/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stored configuration",
	Long:  `View or set the default repository coordinates and storage backend.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the stored configuration",
	RunE:  runConfigSet,
}

var (
	setOwnerFlag      string
	setRepoFlag       string
	setBranchFlag     string
	setTokenFlag      string
	setStorageFlag    string
	setStagingDirFlag string
)

func init() {
	configSetCmd.Flags().StringVar(&setOwnerFlag, "owner", "", "Default repository owner")
	configSetCmd.Flags().StringVar(&setRepoFlag, "repo", "", "Default repository name")
	configSetCmd.Flags().StringVar(&setBranchFlag, "branch", "", "Default repository branch")
	configSetCmd.Flags().StringVar(&setTokenFlag, "token", "", "GitHub personal access token")
	configSetCmd.Flags().StringVar(&setStorageFlag, "storage", "", "Storage backend: local, sqlite or github")
	configSetCmd.Flags().StringVar(&setStagingDirFlag, "dir", "", "Staging directory for the local backend")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// ensureConfigStore opens the config store on demand so the config
// commands work before any repository is configured.
func ensureConfigStore() error {
	if configStore != nil {
		return nil
	}
	var err error
	configStore, err = configfile.NewStore("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}
	cfg := configStore.Config()

	cmd.Printf("owner:    %s\n", cfg.Owner)
	cmd.Printf("repo:     %s\n", cfg.Repo)
	cmd.Printf("branch:   %s\n", cfg.Repository().Branch)
	cmd.Printf("storage:  %s\n", cfg.Storage)
	if cfg.StagingDir != "" {
		cmd.Printf("dir:      %s\n", cfg.StagingDir)
	}
	if cfg.Token != "" {
		cmd.Println("token:    (set)")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}
	cfg := configStore.Config()

	if setOwnerFlag != "" {
		cfg.Owner = setOwnerFlag
	}
	if setRepoFlag != "" {
		cfg.Repo = setRepoFlag
	}
	if setBranchFlag != "" {
		cfg.Branch = setBranchFlag
	}
	if setTokenFlag != "" {
		cfg.Token = setTokenFlag
	}
	if setStorageFlag != "" {
		cfg.Storage = setStorageFlag
	}
	if setStagingDirFlag != "" {
		cfg.StagingDir = setStagingDirFlag
	}

	if err := configStore.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Println("Configuration saved.")
	return nil
}
