package demo

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/dropsel/internal/config"
	"github.com/muurk/dropsel/pkg/dropdown"
)

func newTestDemo() Model {
	return NewModel(Config{
		Options:     dropdown.StringOptions([]string{"A", "B", "C"}),
		Placeholder: "Pick one",
	})
}

// press builds a left-button pointer press at the given cell.
func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewModel_InitialView(t *testing.T) {
	m := newTestDemo()
	view := m.View()

	if !strings.Contains(view, "Pick one") {
		t.Errorf("initial view should show the placeholder, got %q", view)
	}
	if !strings.Contains(view, AppName) {
		t.Errorf("view should contain the header, got %q", view)
	}
	if !m.Dropdown().Focused() {
		t.Error("the widget should be focused on startup")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, cmd := newTestDemo().Update(tt.msg)
			if cmd == nil {
				t.Fatal("quit key should produce a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("quit key should produce tea.Quit, got %T", cmd())
			}
			if updated.(Model).Dropdown().Focused() {
				t.Error("quit should blur the widget (listener release on teardown)")
			}
		})
	}
}

func TestMousePressOnTrigger_OpensWidget(t *testing.T) {
	m := newTestDemo()

	updated, _ := m.Update(press(WidgetX, WidgetY))
	m = updated.(Model)

	if !m.Dropdown().IsOpen() {
		t.Fatal("press on the trigger cell should open the list")
	}
	view := m.View()
	for _, label := range []string{"A", "B", "C"} {
		if !strings.Contains(view, label) {
			t.Errorf("open view should list %q", label)
		}
	}
}

func TestSelectionFlow(t *testing.T) {
	m := newTestDemo()

	updated, _ := m.Update(press(WidgetX, WidgetY))
	m = updated.(Model)

	updated, cmd := m.Update(press(WidgetX, WidgetY+2)) // row of "B"
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("selection should produce an owner notification")
	}

	updated, _ = m.Update(cmd())
	m = updated.(Model)

	if m.LastSelected() != "B" {
		t.Errorf("LastSelected() = %q, want %q", m.LastSelected(), "B")
	}
	if !strings.Contains(m.View(), "Selected: B") {
		t.Errorf("status line should report the selection, got %q", m.View())
	}
	if m.Dropdown().IsOpen() {
		t.Error("list should be closed after selection")
	}
}

func TestClearKey_ResetsSelection(t *testing.T) {
	m := newTestDemo()
	updated, _ := m.Update(dropdown.SelectedMsg{Option: dropdown.Option{Key: "A", Label: "A"}})
	m = updated.(Model)
	if m.LastSelected() != "A" {
		t.Fatalf("LastSelected() = %q, want A", m.LastSelected())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(Model)

	if m.LastSelected() != "" {
		t.Errorf("clear should reset the status, got %q", m.LastSelected())
	}
	if _, has := m.Dropdown().Value(); has {
		t.Error("clear should remove the widget selection")
	}
}

func TestOutsidePress_ClosesWidget(t *testing.T) {
	m := newTestDemo()
	updated, _ := m.Update(press(WidgetX, WidgetY))
	m = updated.(Model)

	updated, _ = m.Update(press(70, 20))
	m = updated.(Model)

	if m.Dropdown().IsOpen() {
		t.Error("press outside the widget bounds should dismiss the list")
	}
	if m.LastSelected() != "" {
		t.Errorf("dismissal must not select anything, got %q", m.LastSelected())
	}
}

func TestWindowSize_IsRecorded(t *testing.T) {
	m := newTestDemo()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.width != 100 || m.height != 40 {
		t.Errorf("window size not recorded: %dx%d", m.width, m.height)
	}
}

func TestSelectionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	registry := config.NewRegistry()
	registry.Options = []config.OptionSpec{{Key: "A"}, {Key: "B"}}

	m := NewModel(Config{
		Options:     dropdown.StringOptions([]string{"A", "B"}),
		Placeholder: "Pick one",
		Registry:    registry,
		ConfigPath:  path,
		Save:        true,
	})

	updated, _ := m.Update(dropdown.SelectedMsg{Option: dropdown.Option{Key: "B", Label: "B"}})
	_ = updated

	saved, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if saved.LastSelected != "B" {
		t.Errorf("persisted LastSelected = %q, want %q", saved.LastSelected, "B")
	}
}
