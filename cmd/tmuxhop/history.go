package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent hop events",
	Long: `Print the most recent events from the hop journal: registrations,
state changes, switches, and prunes, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		if a.journal == nil {
			fmt.Println("History is unavailable (journal could not be opened)")
			return nil
		}

		events, err := a.journal.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No history recorded yet")
			return nil
		}

		for _, ev := range events {
			detail := ev.Detail
			if detail != "" {
				detail = "  " + detail
			}
			fmt.Printf("%s  %-10s %-6s %-8s%s\n",
				ev.Time.Format(time.DateTime), ev.Command, ev.PaneID, ev.State, detail)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of events to show")
}
