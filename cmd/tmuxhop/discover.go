package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

var (
	discoverDryRun bool
	discoverForce  bool
	discoverQuiet  bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover and register existing Claude Code sessions",
	Long: `Find panes already running Claude Code and register them as idle.
Useful after installing tmuxhop into a running tmux server, where no
hook has fired yet for the existing sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("discover", map[string]string{
			"dry_run": fmt.Sprint(discoverDryRun),
			"force":   fmt.Sprint(discoverForce),
		})

		result, err := a.eng.Discover(cmd.Context(), discoverDryRun, discoverForce)
		if err != nil {
			if err == tmux.ErrNotInTmux {
				return fmt.Errorf("not running inside tmux")
			}
			return err
		}

		if len(result.Registered) == 0 && result.Skipped == 0 {
			if !discoverQuiet {
				fmt.Println("No Claude Code sessions found")
			}
			return nil
		}

		for _, loc := range result.Registered {
			project := "unknown"
			if loc.CWD != "" {
				project = filepath.Base(loc.CWD)
			}
			if discoverDryRun {
				fmt.Printf("Would register: %s (%s:%d) - %s\n", loc.ID, loc.Session, loc.Window, project)
			} else if !discoverQuiet {
				printStatus("✓", fmt.Sprintf("Registered %s (%s:%d) - %s", loc.ID, loc.Session, loc.Window, project), color.FgGreen)
			}
		}

		if !discoverDryRun && !discoverQuiet {
			fmt.Printf("\nDiscovered %d session(s)\n", len(result.Registered))
			if result.Skipped > 0 {
				fmt.Printf("Skipped %d already registered session(s)\n", result.Skipped)
			}
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().BoolVarP(&discoverDryRun, "dry-run", "n", false, "Show what would be registered without making changes")
	discoverCmd.Flags().BoolVarP(&discoverForce, "force", "f", false, "Re-register panes that are already registered")
	discoverCmd.Flags().BoolVarP(&discoverQuiet, "quiet", "q", false, "Suppress output except errors")
}
