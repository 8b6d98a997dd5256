package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the local staging ground for file changes",
	Long: `Prints component file changes as they happen. Only available with
the local storage backend.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if dakService == nil {
		return errors.New("dak service not configured")
	}
	if localStore == nil {
		return errors.New("watch requires the local storage backend")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := dakService.Repository()
	changes, err := localStore.Watch(ctx, repo.Owner, repo.Repo, repo.Branch)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (ctrl-c to stop)\n", repo)
	for change := range changes {
		if change.Removed {
			cmd.Printf("removed  %s\n", change.Path)
			continue
		}
		cmd.Printf("changed  %s\n", change.Path)

		// Re-validate on every change so authors see breakage as it
		// happens. Discover picks up files created since the last pass.
		if err := dakService.Discover(ctx); err != nil {
			cmd.Printf("  discover failed: %v\n", err)
			continue
		}
		result := dakService.ValidateAll(ctx)
		cmd.Printf("  %d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))
	}
	return nil
}
