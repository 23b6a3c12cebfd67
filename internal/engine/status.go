package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/priority"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// StateIcons are the display glyphs per state (nerd font).
var StateIcons = map[models.State]string{
	models.StateWaiting: "\U000F009C",
	models.StateIdle:    "\U000F012C",
	models.StateActive:  "\U000F046E",
}

// placeholderRe matches {state:icon} template placeholders.
var placeholderRe = regexp.MustCompile(`\{(\w+):([^}]*)\}`)

// StatusLine renders the status-bar segment. Each {state:icon}
// placeholder becomes "icon count" when the count is positive and
// disappears otherwise. The status bar polls this, so the process
// registry is skipped; the dialog validator still runs to keep waiting
// counts honest. Outside tmux the line is empty.
func (e *Engine) StatusLine(ctx context.Context) (string, error) {
	if !e.store.InTmux() {
		return "", nil
	}

	panes, err := e.store.ListPanes(ctx)
	if err != nil {
		return "", err
	}
	panes = e.validator.Validate(ctx, panes)

	groups, unknown := priority.GroupByState(panes)
	for _, p := range unknown {
		e.log.Errorf("status: pane %s has unknown state %q", p.ID, p.State)
	}
	counts := map[string]int{
		string(models.StateWaiting): len(groups.Waiting),
		string(models.StateIdle):    len(groups.Idle),
		string(models.StateActive):  len(groups.Active),
	}
	// Unknown-state panes land in the active bucket via GroupByState and
	// are counted there.

	format := e.store.GlobalOption(ctx, config.OptionStatusFormat, e.cfg.Status.Format)
	line := placeholderRe.ReplaceAllStringFunc(format, func(match string) string {
		parts := placeholderRe.FindStringSubmatch(match)
		state, icon := parts[1], parts[2]
		if count := counts[state]; count > 0 {
			return icon + " " + strconv.Itoa(count)
		}
		return ""
	})

	return strings.Join(strings.Fields(line), " "), nil
}

// TimeAgo formats the age of a timestamp as a compact string: 5s, 5m,
// 2h, 1d, 3w. Zero and future timestamps show as "?".
func TimeAgo(timestamp, now int64) string {
	if timestamp == 0 {
		return "?"
	}
	diff := now - timestamp
	switch {
	case diff < 0:
		return "?"
	case diff < 60:
		return fmt.Sprintf("%ds", diff)
	case diff < 3600:
		return fmt.Sprintf("%dm", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh", diff/3600)
	case diff < 604800:
		return fmt.Sprintf("%dd", diff/86400)
	default:
		return fmt.Sprintf("%dw", diff/604800)
	}
}
