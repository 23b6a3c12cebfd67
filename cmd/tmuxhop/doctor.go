package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/doctor"
	"github.com/ShayCichocki/tmuxhop/internal/exec"
)

var doctorFormat string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that tmuxhop and its dependencies are set up correctly",
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := doctor.NewRunner(exec.NewRunner()).RunAll(cmd.Context())

		out, err := doctor.Format(checks, doctorFormat)
		if err != nil {
			return err
		}
		fmt.Println(out)

		if !doctor.AllRequiredOK(checks) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVarP(&doctorFormat, "format", "o", "text", "Output format: text, json, or yaml")
}
