package dropdown

import "github.com/charmbracelet/lipgloss"

// Color palette for the widget defaults
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - trigger border, open indicator
	HighlightColor = lipgloss.Color("#43BF6D") // Green - marked option
	TextColor      = lipgloss.Color("#FFFFFF") // White - option labels
	SubtleColor    = lipgloss.Color("#626262") // Gray - placeholder text
)

// Trigger indicator glyphs
const (
	indicatorClosed = "▾"
	indicatorOpen   = "▴"
	markerSelected  = "✓"
)

// Styles holds the lipgloss styles used to render the widget. All styles are
// single-line (horizontal padding only) so the rendered height always matches
// the hit-test rectangle.
type Styles struct {
	// Trigger is the always-visible clickable row showing the current label.
	Trigger lipgloss.Style

	// TriggerOpen replaces Trigger while the option list is visible.
	TriggerOpen lipgloss.Style

	// Placeholder styles the trigger text when no selection exists.
	Placeholder lipgloss.Style

	// Item is an unmarked option row.
	Item lipgloss.Style

	// MarkedItem is the option row whose key equals the current selection.
	MarkedItem lipgloss.Style
}

// DefaultStyles returns the standard widget appearance.
func DefaultStyles() Styles {
	return Styles{
		Trigger: lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1),

		TriggerOpen: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true),

		Item: lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1),

		MarkedItem: lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true).
			Padding(0, 1),
	}
}
