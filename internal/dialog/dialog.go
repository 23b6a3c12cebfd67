// Package dialog detects whether a pane still shows an interactive
// dialog, and demotes waiting panes whose dialog was dismissed behind
// our back. The detection is a rendering heuristic: when in doubt it
// reports a dialog, because a wrongly-kept waiting state is annoying
// while a wrongly-dropped one loses a pane the user meant to revisit.
package dialog

import (
	"context"
	"strings"
	"time"

	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

const (
	separatorRune = '─' // U+2500, the horizontal box-drawing rule
	promptGlyph   = "❯"
)

// HasActiveDialog inspects captured pane content bottom-up. The bottom
// box border is a line of repeated U+2500; the first non-blank line
// above it is the input prompt when a dialog has been dismissed. Empty
// content, whitespace-only content, or content without a border all
// count as an active dialog.
func HasActiveDialog(content string) bool {
	lines := strings.Split(content, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if !isSeparator(lines[i]) {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			return !isPrompt(trimmed)
		}
		return true
	}
	return true
}

func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != separatorRune {
			return false
		}
	}
	return true
}

func isPrompt(trimmed string) bool {
	return trimmed == promptGlyph || strings.HasPrefix(trimmed, promptGlyph+" ")
}

// Capturer reads the tail of a pane's rendered content.
type Capturer interface {
	CapturePane(ctx context.Context, paneID string, lines int) (string, error)
}

// StateWriter persists a pane's declared state.
type StateWriter interface {
	SetPaneState(ctx context.Context, paneID string, state models.State, timestamp int64) error
}

// Validator demotes stale waiting panes whose dialog is gone.
type Validator struct {
	capturer  Capturer
	store     StateWriter
	lines     int
	threshold int64
	log       *logging.Logger
	now       func() time.Time
}

// NewValidator creates a Validator. lines is how much pane content to
// inspect; threshold is the minimum waiting age in seconds before a
// pane is checked at all, keeping fresh dialogs out of the capture path.
func NewValidator(capturer Capturer, store StateWriter, lines int, threshold int64, log *logging.Logger) *Validator {
	if log == nil {
		log = logging.Nop()
	}
	return &Validator{
		capturer:  capturer,
		store:     store,
		lines:     lines,
		threshold: threshold,
		log:       log,
		now:       time.Now,
	}
}

// Validate checks every waiting pane past the age threshold and rewrites
// dismissed ones to idle, both in the store and in the returned slice.
// Capture failures and empty captures leave a pane untouched; store
// write failures are logged and swallowed so one broken pane cannot
// block a cycle.
func (v *Validator) Validate(ctx context.Context, panes []models.Pane) []models.Pane {
	now := v.now().Unix()
	out := make([]models.Pane, len(panes))
	copy(out, panes)

	for i, p := range out {
		if p.State != models.StateWaiting || now-p.Timestamp < v.threshold {
			continue
		}

		content, err := v.capturer.CapturePane(ctx, p.ID, v.lines)
		if err != nil || strings.TrimSpace(content) == "" {
			continue
		}
		if HasActiveDialog(content) {
			continue
		}

		v.log.Infof("pane %s: waiting dialog dismissed, demoting to idle", p.ID)
		if err := v.store.SetPaneState(ctx, p.ID, models.StateIdle, now); err != nil {
			v.log.Errorf("pane %s: demote write failed: %v", p.ID, err)
		}
		out[i].State = models.StateIdle
		out[i].Timestamp = now
	}
	return out
}
