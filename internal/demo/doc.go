// Package demo hosts the interactive dropdown showcase launched by the
// dropsel CLI.
//
// The package follows the coordinator-model pattern: a single Bubble Tea
// Model owns the embedded dropdown widget, forwards input messages to it,
// and consumes the widget's SelectedMsg to drive the status line and
// persistence. Host-level key bindings (quit, clear) are defined with
// bubbles/key and rendered through bubbles/help; the widget itself stays
// mouse-only.
//
// The widget is positioned at fixed cell offsets (WidgetX, WidgetY) that the
// View assembles by hand, keeping the rendered output and the widget's
// hit-test rectangle in agreement. The hosting program must enable mouse
// reporting (tea.WithMouseCellMotion) for clicks to arrive.
package demo
