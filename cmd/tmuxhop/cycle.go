package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/priority"
)

var (
	cyclePane string
	cycleMode string
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Cycle to the next pane in priority order",
	Long: `Cycle to the next pane in priority order. In priority mode only
the most urgent group is traversed (waiting panes first, oldest first);
flat mode walks every managed pane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("cycle", map[string]string{"pane": cyclePane, "mode": cycleMode})

		modeStr := cycleMode
		if modeStr == "" {
			modeStr = a.cfg.Cycle.Mode
		}
		_, err := a.eng.Cycle(cmd.Context(), cyclePane, priority.ParseMode(modeStr))
		return err
	},
}

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Jump back to the previous pane",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("back", nil)

		return a.eng.Back(cmd.Context())
	},
}

func init() {
	cycleCmd.Flags().StringVarP(&cyclePane, "pane", "p", "", "Current pane ID (passed by tmux keybinding)")
	cycleCmd.Flags().StringVarP(&cycleMode, "mode", "m", "", fmt.Sprintf("Cycle mode: %s or %s", priority.ModePriority, priority.ModeFlat))
}
