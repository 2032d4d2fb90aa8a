package demo

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/dropsel/internal/version"
)

// Application branding constants
const (
	AppName   = "DROPSEL DEMO"
	GitHubURL = "github.com/muurk/dropsel"
)

// Layout constants. The widget's cell position must match where View places
// it, so the offsets are fixed rather than derived from the terminal size.
const (
	WidgetX = 2 // Columns of indent before the widget
	WidgetY = 2 // Rows above the widget: header line plus one blank line
)

// Terminal sizing fallbacks, used until the first tea.WindowSizeMsg arrives.
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	AccentColor  = lipgloss.Color("#43BF6D") // Green
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Header style - app name line at the top of the screen
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Header link style - repository URL next to the app name
	HeaderLinkStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Status style - the line reporting the current selection
	StatusStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// Status placeholder style - shown before any selection is made
	StatusEmptyStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	// Help style - bubbles/help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// BuildHeaderContent creates the header line with app name, version, and
// repository URL.
func BuildHeaderContent() string {
	left := HeaderStyle.Render(AppName + " v" + AppVersion())
	right := HeaderLinkStyle.Render(GitHubURL)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}
