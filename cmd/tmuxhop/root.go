package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/dialog"
	"github.com/ShayCichocki/tmuxhop/internal/engine"
	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/history"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/notify"
	"github.com/ShayCichocki/tmuxhop/internal/procscan"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

var rootCmd = &cobra.Command{
	Use:   "tmuxhop",
	Short: "Hop between Claude Code sessions in tmux panes",
	Long: `tmuxhop tracks which tmux panes run Claude Code and what each
session is doing, then gets you to the pane that needs you.

Claude hooks declare pane states (waiting, idle, active); tmuxhop keeps
those states honest against the process table, orders panes so blocked
sessions come first, and offers cycling, a picker, a back jump, and a
status-bar summary on top.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(backCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickerCmd)
	rootCmd.AddCommand(pickerDataCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// app bundles the wired-up dependencies every command works against.
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	runner  *exec.Runner
	client  *tmux.Client
	eng     *engine.Engine
	journal *history.Journal
}

// newApp wires the full stack. Config, log, and journal failures
// degrade to defaults instead of aborting: hook commands must not fail
// because a config file has a typo.
func newApp() *app {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	log, err := logging.New(logPath, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		log = logging.Nop()
	}

	runner := &exec.Runner{}
	client := tmux.NewClient(runner, log)
	registry := procscan.NewPSRegistry(runner, client, log)
	validator := dialog.NewValidator(client, client, cfg.Capture.Lines, cfg.Validate.AgeThresholdSeconds, log)
	dispatcher := notify.NewDispatcher(runner, client, client, log)

	// A broken journal only loses history.
	journal, err := history.Open(history.DefaultPath())
	if err != nil {
		log.Errorf("journal unavailable: %v", err)
		journal = nil
	}

	eng := engine.New(engine.Deps{
		Store:      client,
		Registry:   registry,
		Discoverer: registry,
		Validator:  validator,
		Notify:     dispatcher,
		Journal:    journal,
		Config:     cfg,
		Log:        log,
	})

	return &app{cfg: cfg, log: log, runner: runner, client: client, eng: eng, journal: journal}
}

func (a *app) close() {
	a.journal.Close()
	a.log.Close()
}
