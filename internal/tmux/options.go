package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// SetPaneState writes the state and timestamp options for a pane.
// An empty paneID targets the pane the command runs in.
func (c *Client) SetPaneState(ctx context.Context, paneID string, state models.State, timestamp int64) error {
	if err := c.setPaneOption(ctx, paneID, config.OptionState, string(state)); err != nil {
		return err
	}
	return c.setPaneOption(ctx, paneID, config.OptionTimestamp, fmt.Sprintf("%d", timestamp))
}

// MarkManaged sets the marker option identifying a pane as one we track.
func (c *Client) MarkManaged(ctx context.Context, paneID string) error {
	return c.setPaneOption(ctx, paneID, config.OptionClaudeMarker, "1")
}

// ClearPaneState unsets the state, timestamp, and marker options. Errors on
// individual unsets are collected; an already-unset option is harmless.
func (c *Client) ClearPaneState(ctx context.Context, paneID string) error {
	var firstErr error
	for _, key := range []string{config.OptionState, config.OptionTimestamp, config.OptionClaudeMarker} {
		if err := c.unsetPaneOption(ctx, paneID, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// HasState reports whether a pane carries a declared state.
func (c *Client) HasState(ctx context.Context, paneID string) bool {
	out, err := c.output(ctx, "show-option", "-p", "-t", paneID, "-qv", config.OptionState)
	return err == nil && out != ""
}

// GlobalOption reads a global user option, returning fallback when it is
// unset or the query fails.
func (c *Client) GlobalOption(ctx context.Context, name, fallback string) string {
	out, err := c.output(ctx, "show-option", "-gqv", name)
	if err != nil || out == "" {
		return fallback
	}
	return out
}

// SetGlobalOption writes a global user option.
func (c *Client) SetGlobalOption(ctx context.Context, name, value string) error {
	return c.run(ctx, "set-option", "-g", name, value)
}

// UnsetGlobalOption removes a global user option.
func (c *Client) UnsetGlobalOption(ctx context.Context, name string) error {
	return c.run(ctx, "set-option", "-gu", name)
}

func (c *Client) setPaneOption(ctx context.Context, paneID, key, value string) error {
	args := []string{"set-option", "-p"}
	if paneID != "" {
		args = append(args, "-t", paneID)
	}
	args = append(args, key, value)
	return c.run(ctx, args...)
}

func (c *Client) unsetPaneOption(ctx context.Context, paneID, key string) error {
	args := []string{"set-option", "-p"}
	if paneID != "" {
		args = append(args, "-t", paneID)
	}
	args = append(args, "-u", key)
	return c.run(ctx, args...)
}

// ParseStateSet parses a comma-separated state list from a tmux option
// value into a set. Unknown names are kept so callers can flag them.
func ParseStateSet(value string) map[models.State]bool {
	set := make(map[models.State]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[models.State(part)] = true
	}
	return set
}
