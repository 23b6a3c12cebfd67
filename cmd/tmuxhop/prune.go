package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

var (
	pruneDryRun bool
	pruneQuiet  bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove stale hop state from panes no longer running Claude Code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("prune", map[string]string{"dry_run": fmt.Sprint(pruneDryRun)})

		stale, err := a.eng.Prune(cmd.Context(), pruneDryRun)
		if err != nil {
			if err == tmux.ErrNotInTmux {
				return fmt.Errorf("not running inside tmux")
			}
			return err
		}

		if len(stale) == 0 {
			if !pruneQuiet {
				fmt.Println("No stale panes found")
			}
			return nil
		}

		for _, p := range stale {
			if pruneDryRun {
				fmt.Printf("Would remove: %s (%s:%d) - %s\n", p.ID, p.Session, p.Window, p.Project())
			} else if !pruneQuiet {
				printStatus("✓", fmt.Sprintf("Removed %s (%s:%d) - %s", p.ID, p.Session, p.Window, p.Project()), color.FgGreen)
			}
		}

		if !pruneDryRun && !pruneQuiet {
			fmt.Printf("\nPruned %d stale pane(s)\n", len(stale))
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVarP(&pruneDryRun, "dry-run", "n", false, "Show what would be removed without making changes")
	pruneCmd.Flags().BoolVarP(&pruneQuiet, "quiet", "q", false, "Suppress output except errors")
}
