// Package cli provides the DAKForge command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/dakforge/dakforge/internal/adapters/driven/config/file"
	"github.com/dakforge/dakforge/internal/adapters/driven/storage/github"
	"github.com/dakforge/dakforge/internal/adapters/driven/storage/local"
	"github.com/dakforge/dakforge/internal/adapters/driven/storage/memory"
	"github.com/dakforge/dakforge/internal/adapters/driven/storage/sqlite"
	"github.com/dakforge/dakforge/internal/components"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
	"github.com/dakforge/dakforge/internal/core/services"
	"github.com/dakforge/dakforge/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags. Repository coordinates given on the command line
// override the stored configuration.
var (
	verboseFlag    bool
	ownerFlag      string
	repoFlag       string
	branchFlag     string
	storageFlag    string
	stagingDirFlag string
)

// Wired during setup. Tests inject their own service instead.
var (
	configStore *configfile.Store
	dakService  *services.DAKService

	// localStore is non-nil only when the local backend is active;
	// the watch command needs its change feed.
	localStore *local.Store
)

var rootCmd = &cobra.Command{
	Use:   "dakforge",
	Short: "Author and validate WHO SMART Guidelines DAK repositories",
	Long: `DAKForge manages the component files of a Digital Adaptation Kit
repository: health interventions, personas, scenarios, business
processes, data elements, decision logic, indicators, requirements
and test scenarios, all under the repository's input/ directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if skipSetup(cmd) {
			return nil
		}
		return setup(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "Repository owner (overrides config)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Repository name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&branchFlag, "branch", "", "Repository branch (overrides config)")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "Storage backend: local, sqlite, github or memory")
	rootCmd.PersistentFlags().StringVar(&stagingDirFlag, "dir", "", "Staging directory for the local backend")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// skipSetup reports whether cmd runs without a wired DAK service: the
// version and config commands must work before any repository exists.
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "version" || c.Name() == "config" {
			return true
		}
	}
	return false
}

// setup loads the configuration and wires the DAK service. A service
// injected beforehand (by tests) is left untouched.
func setup(ctx context.Context) error {
	if dakService != nil {
		return nil
	}

	var err error
	configStore, err = configfile.NewStore("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := configStore.Config()

	repo := cfg.Repository()
	if ownerFlag != "" {
		repo.Owner = ownerFlag
	}
	if repoFlag != "" {
		repo.Repo = repoFlag
	}
	if branchFlag != "" {
		repo.Branch = branchFlag
	}
	if err := repo.Validate(); err != nil {
		return fmt.Errorf("repository not configured: %w (set with 'dakforge config set' or --owner/--repo)", err)
	}

	backend := cfg.Storage
	if storageFlag != "" {
		backend = storageFlag
	}
	storage, err := openStorage(ctx, backend, cfg)
	if err != nil {
		return err
	}

	logger.Debug("using %s storage for %s", backend, repo)
	dakService = services.NewDAKService(repo, storage, components.Default())
	return nil
}

// openStorage builds the selected storage backend.
func openStorage(ctx context.Context, backend string, cfg configfile.Config) (driven.Storage, error) {
	switch backend {
	case "", "local":
		dir := stagingDirFlag
		if dir == "" {
			dir = cfg.StagingDir
		}
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, ".dakforge", "staging")
		}
		store, err := local.NewStore(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open staging directory: %w", err)
		}
		localStore = store
		return store, nil

	case "sqlite":
		store, err := sqlite.NewStore("")
		if err != nil {
			return nil, fmt.Errorf("failed to open staging database: %w", err)
		}
		return store, nil

	case "github":
		token := cfg.Token
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}
		if token == "" {
			return nil, fmt.Errorf("github backend: %w (set token in config or GITHUB_TOKEN)", domain.ErrAuthRequired)
		}
		return github.NewStore(ctx, token), nil

	case "memory":
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q: %w", backend, domain.ErrUnsupportedType)
	}
}
