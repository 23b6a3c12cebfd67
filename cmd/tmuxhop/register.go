package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

var registerState string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register the current pane with a state",
	Long: `Register the current pane with a state. Meant to be called from
Claude Code hooks; outside tmux it exits quietly so hooks can run
unconditionally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := models.State(registerState)
		if !state.Valid() {
			return fmt.Errorf("invalid state %q (valid: waiting, idle, active)", registerState)
		}

		a := newApp()
		defer a.close()
		a.log.CLICall("register", map[string]string{"state": registerState})

		return a.eng.Register(cmd.Context(), state)
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerState, "state", "s", "", "State to register (waiting, idle, active)")
	registerCmd.MarkFlagRequired("state")
}
