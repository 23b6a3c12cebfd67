package main

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear hop state from the current pane",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()
		a.log.CLICall("clear", nil)

		return a.eng.Clear(cmd.Context())
	},
}
