package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tmuxhop version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmuxhop version %s\n", version.Get())
	},
}
