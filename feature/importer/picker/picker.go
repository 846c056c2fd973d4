package picker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"notes-importer/core/source"
	"notes-importer/feature/importer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines key bindings for the picker.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

// DefaultKeys returns the default picker key bindings.
var DefaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "import"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "cancel"),
	),
}

// Model is the adventure selection dialog.
type Model struct {
	options []source.Option
	cursor  int
	chosen  string
	keys    KeyMap
}

// New creates a dialog with the cursor on defaultID when it is listed.
func New(options []source.Option, defaultID string) Model {
	m := Model{options: options, keys: DefaultKeys}
	for i, o := range options {
		if o.ID == defaultID {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Choose):
		if len(m.options) > 0 {
			m.chosen = m.options[m.cursor].ID
		}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.chosen = ""
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Import Notes"))
	b.WriteString("\n")

	if len(m.options) == 0 {
		b.WriteString(itemStyle.Render("No adventures found"))
		b.WriteString("\n")
	}
	for i, o := range m.options {
		line := o.Name + " " + idStyle.Render("("+o.ID+")")
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	help := []string{
		m.keys.Up.Help().Key + " " + m.keys.Up.Help().Desc,
		m.keys.Down.Help().Key + " " + m.keys.Down.Help().Desc,
		m.keys.Choose.Help().Key + " " + m.keys.Choose.Help().Desc,
		m.keys.Cancel.Help().Key + " " + m.keys.Cancel.Help().Desc,
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

// Chosen returns the selected adventure id, empty when dismissed.
func (m Model) Chosen() string {
	return m.chosen
}

// Selector runs the dialog on a terminal.
type Selector struct {
	In  io.Reader
	Out io.Writer
}

// Select implements importer.Selector.
func (s Selector) Select(ctx context.Context, options []source.Option, defaultID string) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}

	final, err := tea.NewProgram(New(options, defaultID), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("adventure picker failed: %w", err)
	}
	return final.(Model).Chosen(), nil
}

// Notifier returns a notifier printing styled messages to w.
func Notifier(w io.Writer) importer.Notifier {
	return importer.NotifierFunc(func(_ context.Context, message string) {
		fmt.Fprintln(w, noticeStyle.Render("✓ "+message))
	})
}
