// Package engine orchestrates the pane lifecycle: registering declared
// states, reconciling them against the process table, and navigating
// between panes. It holds no tmux knowledge of its own; everything goes
// through the injected store and registry.
package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/history"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/notify"
	"github.com/ShayCichocki/tmuxhop/internal/procscan"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// PaneStore is the attribute store and navigation surface the engine
// drives. *tmux.Client implements it.
type PaneStore interface {
	InTmux() bool
	CurrentPaneID(ctx context.Context) (string, error)
	CurrentSessionWindow(ctx context.Context) (string, int, error)
	ListPanes(ctx context.Context) ([]models.Pane, error)
	SetPaneState(ctx context.Context, paneID string, state models.State, timestamp int64) error
	MarkManaged(ctx context.Context, paneID string) error
	ClearPaneState(ctx context.Context, paneID string) error
	HasState(ctx context.Context, paneID string) bool
	GlobalOption(ctx context.Context, name, fallback string) string
	UnsetGlobalOption(ctx context.Context, name string) error
	SwitchToPane(ctx context.Context, paneID, session string, window int) error
	DisplayMessage(ctx context.Context, msg string)
}

// Discoverer finds panes running a managed process regardless of state.
type Discoverer interface {
	ClaudePanes(ctx context.Context) ([]tmux.PaneLocation, error)
}

// Validator corrects stale waiting states before panes are used.
type Validator interface {
	Validate(ctx context.Context, panes []models.Pane) []models.Pane
}

// Dispatcher fans a state change out to OS notifications and focus.
type Dispatcher interface {
	HandleStateNotifications(ctx context.Context, state models.State, project string, pane *notify.PaneContext)
}

// Deps collects everything an Engine needs. Nil Validator, Dispatcher,
// Journal, Config, and Log fall back to no-ops or defaults.
type Deps struct {
	Store      PaneStore
	Registry   procscan.Registry
	Discoverer Discoverer
	Validator  Validator
	Notify     Dispatcher
	Journal    history.Recorder
	Config     *config.Config
	Log        *logging.Logger
}

// Engine implements every tmuxhop operation.
type Engine struct {
	store      PaneStore
	registry   procscan.Registry
	discoverer Discoverer
	validator  Validator
	notify     Dispatcher
	journal    history.Recorder
	cfg        *config.Config
	log        *logging.Logger
	now        func() time.Time
	getenv     func(string) string
}

// New builds an Engine from its dependencies.
func New(d Deps) *Engine {
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	e := &Engine{
		store:      d.Store,
		registry:   d.Registry,
		discoverer: d.Discoverer,
		validator:  d.Validator,
		notify:     d.Notify,
		journal:    d.Journal,
		cfg:        d.Config,
		log:        d.Log,
		now:        time.Now,
		getenv:     os.Getenv,
	}
	if e.validator == nil {
		e.validator = passValidator{}
	}
	return e
}

type passValidator struct{}

func (passValidator) Validate(_ context.Context, panes []models.Pane) []models.Pane { return panes }

// Reconcile splits declared panes into those with a live process and
// those without. The process registry is consulted exactly once, so one
// reconciliation sees one consistent snapshot.
func (e *Engine) Reconcile(ctx context.Context) (valid, stale []models.Pane, err error) {
	panes, err := e.store.ListPanes(ctx)
	if err != nil {
		return nil, nil, err
	}
	running, err := e.registry.RunningPaneIDs(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range panes {
		if running[p.ID] {
			valid = append(valid, p)
		} else {
			stale = append(stale, p)
		}
	}
	return valid, stale, nil
}

// ValidatedPanes returns the reconciled live panes with stale waiting
// states corrected.
func (e *Engine) ValidatedPanes(ctx context.Context) ([]models.Pane, error) {
	valid, _, err := e.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	return e.validator.Validate(ctx, valid), nil
}

// Register declares a state for the current pane. Outside tmux it is a
// silent no-op so Claude hooks can run unconditionally. After the write
// it dispatches notifications and, when configured, auto-hops the client
// to this pane.
func (e *Engine) Register(ctx context.Context, state models.State) error {
	if !e.store.InTmux() {
		e.log.Infof("register: not in tmux, skipping")
		return nil
	}

	now := e.now().Unix()
	if err := e.store.SetPaneState(ctx, "", state, now); err != nil {
		return err
	}
	if err := e.store.MarkManaged(ctx, ""); err != nil {
		return err
	}
	e.log.Infof("register: state set to %s", state)
	e.record(ctx, history.Event{Command: "register", PaneID: e.getenv("TMUX_PANE"), State: string(state)})

	project := currentProject()
	if e.notify != nil {
		e.notify.HandleStateNotifications(ctx, state, project, e.paneContext(ctx, project))
	}

	if e.shouldAutoHop(ctx, state) {
		e.autoHop(ctx)
	}
	return nil
}

// Clear removes the declared state from the current pane. Silent no-op
// outside tmux.
func (e *Engine) Clear(ctx context.Context) error {
	if !e.store.InTmux() {
		e.log.Infof("clear: not in tmux, skipping")
		return nil
	}
	if err := e.store.ClearPaneState(ctx, ""); err != nil {
		return err
	}
	e.log.Infof("clear: state cleared")
	e.record(ctx, history.Event{Command: "clear", PaneID: e.getenv("TMUX_PANE")})
	return nil
}

// shouldAutoHop decides whether registering this state moves the client
// here. With priority-only on (the default), a strictly higher priority
// pane elsewhere blocks the hop; an equal one does not.
func (e *Engine) shouldAutoHop(ctx context.Context, state models.State) bool {
	autoStates := e.store.GlobalOption(ctx, config.OptionAutoHop, "")
	if autoStates == "" {
		return false
	}
	if !tmux.ParseStateSet(autoStates)[state] {
		return false
	}

	priorityOnly := strings.ToLower(e.store.GlobalOption(ctx, config.OptionAutoPriorityOnly, "on")) != "off"
	if !priorityOnly {
		return true
	}

	current := e.getenv("TMUX_PANE")
	if current == "" {
		e.log.Infof("auto-hop: no TMUX_PANE, skipping priority check")
		return true
	}

	panes, err := e.ValidatedPanes(ctx)
	if err != nil {
		e.log.Errorf("auto-hop: pane listing failed: %v", err)
		return true
	}
	newPriority := state.Priority()
	for _, p := range panes {
		if p.ID == current {
			continue
		}
		if p.State.Priority() < newPriority {
			e.log.Infof("auto-hop: skipped, %s has higher priority %s", p.ID, p.State)
			return false
		}
	}
	return true
}

func (e *Engine) autoHop(ctx context.Context) {
	current := e.getenv("TMUX_PANE")
	if current == "" {
		e.log.Infof("auto-hop: no TMUX_PANE, skipping")
		return
	}
	if err := e.store.SwitchToPane(ctx, current, "", -1); err != nil {
		e.log.Errorf("auto-hop: failed to switch to %s: %v", current, err)
		return
	}
	e.log.Infof("auto-hop: switched to %s", current)
	e.record(ctx, history.Event{Command: "auto-hop", PaneID: current})
}

func (e *Engine) paneContext(ctx context.Context, project string) *notify.PaneContext {
	paneID := e.getenv("TMUX_PANE")
	if paneID == "" {
		return nil
	}
	session, window, err := e.store.CurrentSessionWindow(ctx)
	if err != nil || session == "" {
		return nil
	}
	return &notify.PaneContext{PaneID: paneID, Session: session, Window: window, Project: project}
}

func (e *Engine) record(ctx context.Context, event history.Event) {
	if e.journal != nil {
		e.journal.Record(ctx, event)
	}
}

func currentProject() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return filepath.Base(cwd)
}
