package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/engine"
	"github.com/ShayCichocki/tmuxhop/internal/picker"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

var pickerCmd = &cobra.Command{
	Use:   "picker",
	Short: "Pick a pane interactively and switch to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("picker", nil)

		panes, err := a.eng.List(cmd.Context())
		if err != nil {
			if err == tmux.ErrNotInTmux {
				return fmt.Errorf("not running inside tmux")
			}
			return err
		}
		if len(panes) == 0 {
			fmt.Println("No Claude Code sessions found")
			return nil
		}

		selected, err := picker.Run(panes, time.Now().Unix())
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		return a.eng.Switch(cmd.Context(), selected.ID)
	},
}

// pickerDataCmd feeds external pickers like fzf: one line per pane,
// label and pane ID separated by a tab.
var pickerDataCmd = &cobra.Command{
	Use:    "picker-data",
	Short:  "Output pane data for fzf (internal)",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		panes, err := a.eng.List(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now().Unix()
		for _, p := range panes {
			icon, ok := engine.StateIcons[p.State]
			if !ok {
				icon = "?"
			}
			label := fmt.Sprintf("%s %s (%s:%d) [%s]",
				icon, p.Project(), p.Session, p.Window, engine.TimeAgo(p.Timestamp, now))
			fmt.Printf("%s\t%s\n", label, p.ID)
		}
		return nil
	},
}

var switchPane string

var switchCmd = &cobra.Command{
	Use:    "switch",
	Short:  "Switch to a specific pane (internal)",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("switch", map[string]string{"pane": switchPane})

		return a.eng.Switch(cmd.Context(), switchPane)
	},
}

func init() {
	switchCmd.Flags().StringVarP(&switchPane, "pane", "p", "", "Pane ID to switch to")
	switchCmd.MarkFlagRequired("pane")
}
