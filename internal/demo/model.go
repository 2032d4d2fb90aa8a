package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/dropsel/internal/config"
	"github.com/muurk/dropsel/internal/logging"
	"github.com/muurk/dropsel/pkg/dropdown"
)

// keyMap defines key bindings for the demo. These are host-level controls;
// the widget itself is mouse-only.
type keyMap struct {
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear selection"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Config carries everything the demo model needs at construction time.
type Config struct {
	Options     []dropdown.Option
	Placeholder string
	Selected    string // Initial selection (option key); empty for none

	// Registry and ConfigPath enable persistence of the last selection.
	// Persistence is skipped when Save is false, Registry is nil, or
	// ConfigPath is empty.
	Registry   *config.Registry
	ConfigPath string
	Save       bool
}

// Model is the demo host: it embeds the dropdown widget, forwards input to
// it, consumes its selection messages, and renders the surrounding chrome.
type Model struct {
	dropdown dropdown.Model
	keys     keyMap
	help     help.Model

	registry   *config.Registry
	configPath string
	save       bool

	lastSelected string
	width        int
	height       int
}

// NewModel creates the demo model with a focused, positioned widget.
func NewModel(cfg Config) Model {
	dd := dropdown.New(dropdown.Config{
		Options:       cfg.Options,
		SelectedValue: cfg.Selected,
		Placeholder:   cfg.Placeholder,
	})
	dd.Focus()
	dd.SetPosition(WidgetX, WidgetY)

	// Until the first WindowSizeMsg arrives, size against the real
	// terminal so wide option labels don't wrap and break hit testing.
	width := GetTerminalWidth()
	if max := width - 2*WidgetX; dd.Width() > max {
		dd.SetWidth(max)
	}

	return Model{
		dropdown:   dd,
		keys:       newKeyMap(),
		help:       help.New(),
		registry:   cfg.Registry,
		configPath: cfg.ConfigPath,
		save:       cfg.Save,
		width:      width,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages: host keys are handled here, everything else is
// forwarded to the widget, and the widget's selection messages come back
// around for status display and persistence.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.dropdown.Blur() // release the pointer listener on teardown
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.dropdown.ClearSelection()
			m.lastSelected = ""
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if max := msg.Width - 2*WidgetX; m.dropdown.Width() > max {
			m.dropdown.SetWidth(max)
		}
		return m, nil

	case dropdown.SelectedMsg:
		m.lastSelected = msg.Option.Label
		logging.LogSelection(msg.Option.Key, msg.Option.Label)
		m.persistSelection(msg.Option.Key)
		return m, nil
	}

	wasOpen := m.dropdown.IsOpen()
	var cmd tea.Cmd
	m.dropdown, cmd = m.dropdown.Update(msg)
	if m.dropdown.IsOpen() != wasOpen {
		logging.LogToggle(m.dropdown.IsOpen(), "mouse")
	}
	return m, cmd
}

// persistSelection records the chosen key in the registry file, if enabled.
// Persistence failures are logged, never surfaced: losing the remembered
// value must not break the session.
func (m Model) persistSelection(selectedKey string) {
	if !m.save || m.registry == nil || m.configPath == "" {
		return
	}

	m.registry.RememberSelection(selectedKey)
	if err := config.SaveTo(m.registry, m.configPath); err != nil {
		logging.Warn("Failed to persist selection",
			zap.String("path", m.configPath),
			zap.Error(err),
		)
	}
}

// View renders the header, the widget at its fixed cell position, the
// selection status, and the help footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(BuildHeaderContent())
	b.WriteString("\n\n")

	// Indent every widget row so the rendered position matches the
	// widget's hit-test rectangle.
	indent := strings.Repeat(" ", WidgetX)
	for i, line := range strings.Split(m.dropdown.View(), "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent + line)
	}

	b.WriteString("\n\n")
	if m.lastSelected != "" {
		b.WriteString(StatusStyle.Render(fmt.Sprintf("  Selected: %s", m.lastSelected)))
	} else {
		b.WriteString(StatusEmptyStyle.Render("  Nothing selected yet - click the trigger"))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// LastSelected returns the label of the most recent selection, empty when
// none has been made this session.
func (m Model) LastSelected() string {
	return m.lastSelected
}

// Dropdown exposes the embedded widget for inspection.
func (m Model) Dropdown() dropdown.Model {
	return m.dropdown
}
