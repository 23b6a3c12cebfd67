package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Output status for the tmux status bar",
	Long: `Render the status-bar segment. The format comes from the
@hop-status-format tmux option; each {state:icon} placeholder expands
to "icon count" when the count is positive and to nothing otherwise.

Example formats:
  "{waiting:W} {idle:I}"               ASCII icons, waiting and idle
  "{waiting:W} {idle:I} {active:A}"    include the active count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Polled by the status bar; skip the CLI call log to keep the
		// hop log readable.
		a := newApp()
		defer a.close()

		line, err := a.eng.StatusLine(cmd.Context())
		if err != nil {
			return err
		}
		if line != "" {
			fmt.Print(line)
		}
		return nil
	},
}
