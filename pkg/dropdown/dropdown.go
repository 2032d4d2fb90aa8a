package dropdown

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultWidth is used when the host doesn't set an explicit width and no
// option label is wide enough to grow the widget past it.
const DefaultWidth = 24

// Config is the construction-time configuration of the widget.
type Config struct {
	// Options are the selectable values, rendered in the given order.
	Options []Option

	// SelectedValue is the externally-controlled current selection (an
	// Option key). Empty means no selection yet.
	SelectedValue string

	// Placeholder is the trigger label shown while no selection exists.
	Placeholder string

	// OnSelect is invoked exactly once per user-driven selection with the
	// selected option's key. May be nil.
	OnSelect func(value string)
}

// Model is a clickable dropdown selector. It renders a trigger row showing
// the current label and, while open, one row per option below it. The widget
// owns the open flag; the selected value belongs to the caller and can be
// resynchronized at any time with SetSelected.
//
// The model only reacts to mouse input while focused. Focus and Blur bracket
// the widget's active lifetime the way a document-level pointer listener
// would be registered and released: a focused widget sees every press the
// program receives and closes itself when one lands outside its bounds.
type Model struct {
	// Styles configures the widget appearance. Replace individual entries
	// to restyle; layout is unaffected.
	Styles Styles

	options     []Option
	placeholder string
	onSelect    func(string)

	selected    string
	hasSelected bool

	open    bool
	focused bool

	x, y  int
	width int
}

// New creates a dropdown widget from the given configuration. The widget
// starts closed, unfocused, and positioned at the origin.
func New(cfg Config) Model {
	m := Model{
		Styles:      DefaultStyles(),
		options:     cfg.Options,
		placeholder: cfg.Placeholder,
		onSelect:    cfg.OnSelect,
		width:       DefaultWidth,
	}
	if cfg.SelectedValue != "" {
		m.selected = cfg.SelectedValue
		m.hasSelected = true
	}
	// Grow to fit the widest label plus marker and indicator columns.
	for _, opt := range cfg.Options {
		if w := len(opt.Label) + 6; w > m.width {
			m.width = w
		}
	}
	return m
}

// Init implements tea.Model. The widget needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus makes the widget start observing pointer presses.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the widget from observing pointer presses and force-closes the
// option list. Safe to call repeatedly and on already-blurred widgets; this
// is the unconditional release on teardown.
func (m *Model) Blur() {
	m.focused = false
	m.open = false
}

// Focused reports whether the widget is observing pointer input.
func (m Model) Focused() bool {
	return m.focused
}

// SetPosition sets the terminal cell of the widget's top-left corner. The
// host calls this whenever its layout changes so hit testing stays aligned
// with the rendered view.
func (m *Model) SetPosition(x, y int) {
	m.x = x
	m.y = y
}

// Position returns the widget's top-left cell.
func (m Model) Position() (x, y int) {
	return m.x, m.y
}

// SetWidth fixes the rendered width in cells. Values below the default are
// clamped so the trigger indicator always fits.
func (m *Model) SetWidth(w int) {
	if w < DefaultWidth {
		w = DefaultWidth
	}
	m.width = w
}

// Width returns the rendered width in cells.
func (m Model) Width() int {
	return m.width
}

// Height returns the number of rows the widget currently occupies: the
// trigger row plus, while open, one row per option.
func (m Model) Height() int {
	if m.open {
		return 1 + len(m.options)
	}
	return 1
}

// IsOpen reports whether the option list is visible.
func (m Model) IsOpen() bool {
	return m.open
}

// Value returns the currently selected option key, and whether a selection
// exists at all.
func (m Model) Value() (string, bool) {
	return m.selected, m.hasSelected
}

// SetSelected resynchronizes the selection from the owner. The externally
// supplied value is the single source of truth for the displayed label, so
// the trigger reflects it on the next View.
func (m *Model) SetSelected(value string) {
	m.selected = value
	m.hasSelected = true
}

// ClearSelection removes the selection; the trigger falls back to the
// placeholder.
func (m *Model) ClearSelection() {
	m.selected = ""
	m.hasSelected = false
}

// Options returns the option set in render order.
func (m Model) Options() []Option {
	return m.options
}

// Label returns the text currently shown in the trigger: the label of the
// option matching the selected value, the raw selected value when no option
// matches, or the placeholder when nothing is selected.
func (m Model) Label() string {
	if !m.hasSelected {
		return m.placeholder
	}
	for _, opt := range m.options {
		if opt.Key == m.selected {
			return opt.Label
		}
	}
	return m.selected
}

// Contains reports whether the given terminal cell lies inside the widget's
// current bounds: the trigger row alone when closed, the trigger row plus the
// option list when open.
func (m Model) Contains(x, y int) bool {
	if x < m.x || x >= m.x+m.width {
		return false
	}
	return y >= m.y && y < m.y+m.Height()
}

// Update handles a single message. Pointer presses are processed atomically:
// a press on the trigger toggles the list, a press on an option row selects
// it (closing the list and informing the owner exactly once), and a press
// anywhere outside the bounds closes the list. All other input is ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !m.focused {
		return m, nil
	}
	if mouse.Button != tea.MouseButtonLeft || mouse.Action != tea.MouseActionPress {
		return m, nil
	}

	if !m.Contains(mouse.X, mouse.Y) {
		// Outside press. Closing an already-closed widget is a no-op.
		m.open = false
		return m, nil
	}

	if mouse.Y == m.y {
		m.open = !m.open
		return m, nil
	}

	if index := mouse.Y - m.y - 1; m.open && index >= 0 && index < len(m.options) {
		return m.choose(index)
	}
	return m, nil
}

// choose applies the selection at the given option index, closes the list,
// and returns the command that informs the owner.
func (m Model) choose(index int) (Model, tea.Cmd) {
	opt := m.options[index]
	m.selected = opt.Key
	m.hasSelected = true
	m.open = false
	return m, m.selectCmd(opt)
}

// selectCmd builds the single owner notification for a selection: it invokes
// the OnSelect callback (if any) and yields a SelectedMsg.
func (m Model) selectCmd(opt Option) tea.Cmd {
	onSelect := m.onSelect
	return func() tea.Msg {
		if onSelect != nil {
			onSelect(opt.Key)
		}
		return SelectedMsg{Option: opt}
	}
}

// View renders the trigger row and, while open, the option list. The output
// always spans exactly Height() lines so hit testing and rendering agree.
func (m Model) View() string {
	var b strings.Builder

	indicator := indicatorClosed
	triggerStyle := m.Styles.Trigger
	if m.open {
		indicator = indicatorOpen
		triggerStyle = m.Styles.TriggerOpen
	}

	label := m.Label()
	if !m.hasSelected {
		label = m.Styles.Placeholder.Render(label)
	}
	b.WriteString(triggerStyle.MaxWidth(m.width).Render(label + " " + indicator))

	if m.open {
		marked := false
		for _, opt := range m.options {
			b.WriteString("\n")

			style := m.Styles.Item
			prefix := "  "
			// At most one row carries the selection marker; with
			// duplicate keys the first occurrence wins.
			if !marked && m.hasSelected && opt.Key == m.selected {
				style = m.Styles.MarkedItem
				prefix = markerSelected + " "
				marked = true
			}
			b.WriteString(style.MaxWidth(m.width).Render(prefix + opt.Label))
		}
	}

	return b.String()
}
