package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/engine"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all Claude Code panes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("list", nil)

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

		for _, p := range panes {
			ts := "--:--:--"
			if p.Timestamp != 0 {
				ts = time.Unix(p.Timestamp, 0).Format("15:04:05")
			}
			icon, ok := engine.StateIcons[p.State]
			if !ok {
				icon = "?"
			}
			fmt.Printf("%s %-8s %s  %-6s %s:%d  %s\n",
				icon, p.State, ts, p.ID, p.Session, p.Window, p.Project())
		}
		return nil
	},
}
