package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/install"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/paths"
)

var (
	installYes        bool
	installComponent  string
	installSkipTmux   bool
	installSkipClaude bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the tmux plugin and the Claude Code hook plugin",
	Long: `Set up both halves of tmuxhop: the tmux plugin that binds keys and
feeds the status bar, and the Claude Code plugin whose hooks report
session state. With TPM present the tmux half is a plugin line in
tmux.conf; without it, a symlink into the tmux plugins directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := exec.NewRunner()
		log, err := logging.New(logging.DefaultLogPath(), logging.LevelInfo)
		if err != nil {
			log = logging.Nop()
		}
		defer log.Close()
		inst := install.NewInstaller(runner, log)

		doTmux := !installSkipTmux && (installComponent == "all" || installComponent == "tmux")
		doClaude := !installSkipClaude && (installComponent == "all" || installComponent == "claude")
		if !doTmux && !doClaude {
			return fmt.Errorf("nothing to install: component %q with the given skip flags", installComponent)
		}

		if !installYes {
			if doTmux {
				fmt.Println("Will install the tmux plugin (tmux.conf or plugins directory)")
			}
			if doClaude {
				fmt.Println("Will install the Claude Code hook plugin via the claude CLI")
			}
			fmt.Print("Proceed? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" && answer != "yes" {
				fmt.Println("Aborted")
				return nil
			}
		}

		if doTmux {
			if paths.FindTPM(cmd.Context(), runner) != "" {
				res, err := inst.InstallTmuxPluginTPM("")
				if err != nil {
					return err
				}
				printStatus(markerFor(res.Changed), res.Detail, color.FgGreen)
			} else {
				printStatus("!", "TPM not found; install it from https://github.com/tmux-plugins/tpm and re-run, or symlink a checkout into the tmux plugins directory", color.FgYellow)
			}
		}

		if doClaude {
			res, err := inst.InstallClaudePlugin(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(markerFor(res.Changed), res.Detail, color.FgGreen)
		}

		tmuxOK, claudeOK := inst.Verify(cmd.Context())
		fmt.Println()
		if tmuxOK && claudeOK {
			printStatus("✓", "Both plugins installed; reload tmux to activate", color.FgGreen)
		} else {
			printStatus("!", "Installation incomplete; run 'tmuxhop doctor' for details", color.FgYellow)
		}
		return nil
	},
}

var updateComponent string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the tmux plugin and the Claude Code hook plugin",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := exec.NewRunner()
		log, err := logging.New(logging.DefaultLogPath(), logging.LevelInfo)
		if err != nil {
			log = logging.Nop()
		}
		defer log.Close()
		inst := install.NewInstaller(runner, log)

		if updateComponent == "all" || updateComponent == "tmux" {
			res, err := inst.UpdateTmuxPlugin(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(markerFor(res.Changed), res.Detail, color.FgGreen)
		}
		if updateComponent == "all" || updateComponent == "claude" {
			res, err := inst.UpdateClaudePlugin(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(markerFor(res.Changed), res.Detail, color.FgGreen)
		}
		return nil
	},
}

func markerFor(changed bool) string {
	if changed {
		return "✓"
	}
	return "-"
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip the confirmation prompt")
	installCmd.Flags().StringVarP(&installComponent, "component", "c", "all", "Which half to install: all, tmux, or claude")
	installCmd.Flags().BoolVar(&installSkipTmux, "skip-tmux", false, "Skip the tmux plugin")
	installCmd.Flags().BoolVar(&installSkipClaude, "skip-claude", false, "Skip the Claude Code plugin")
	updateCmd.Flags().StringVarP(&updateComponent, "component", "c", "all", "Which half to update: all, tmux, or claude")
}
