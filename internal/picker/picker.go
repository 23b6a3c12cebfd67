// Package picker provides the interactive pane picker, a small
// bubbletea list with incremental filtering. Selecting an entry returns
// the pane so the caller can switch to it.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/tmuxhop/internal/engine"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Item is one selectable pane with its rendered label.
type Item struct {
	Pane  models.Pane
	Label string
}

// Model is the bubbletea model for the picker.
type Model struct {
	items    []Item
	filtered []int
	cursor   int
	filter   textinput.Model
	selected *models.Pane
	quitting bool
}

// New builds a picker over the given panes, labeled with the state icon,
// project, location, and age at time now.
func New(panes []models.Pane, now int64) Model {
	items := make([]Item, len(panes))
	for i, p := range panes {
		icon, ok := engine.StateIcons[p.State]
		if !ok {
			icon = "?"
		}
		items[i] = Item{
			Pane: p,
			Label: fmt.Sprintf("%s %s (%s:%d) [%s]",
				icon, p.Project(), p.Session, p.Window, engine.TimeAgo(p.Timestamp, now)),
		}
	}

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "> "
	filter.Focus()

	m := Model{items: items, filter: filter}
	m.refilter()
	return m
}

// Selected returns the chosen pane, or nil when the picker was dismissed.
func (m Model) Selected() *models.Pane {
	return m.selected
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				pane := m.items[m.filtered[m.cursor]].Pane
				m.selected = &pane
			}
			m.quitting = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Claude Code panes"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching panes"))
		b.WriteString("\n")
		return b.String()
	}

	for i, idx := range m.filtered {
		label := m.items[idx].Label
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: switch  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) refilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.filtered = m.filtered[:0]
	for i, item := range m.items {
		if query == "" || strings.Contains(strings.ToLower(item.Label), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// Run shows the picker and returns the selected pane, or nil when the
// user dismissed it.
func Run(panes []models.Pane, now int64) (*models.Pane, error) {
	final, err := tea.NewProgram(New(panes, now)).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return model.Selected(), nil
}
