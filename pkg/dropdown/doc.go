// Package dropdown provides a clickable dropdown selector widget for
// Bubble Tea programs.
//
// The widget replaces a plain value prompt with a styled, mouse-driven list:
// a trigger row shows the current label, a left click on it toggles the
// option list, a click on an option selects it, and a click anywhere outside
// the widget's bounds dismisses the list.
//
// # Architecture
//
// The widget is a standard Bubble Tea component (Init/Update/View) with two
// pieces of state it owns exclusively:
//
//   - Open flag: toggled by trigger clicks, forced false by outside clicks,
//     selections, and Blur.
//   - Focus flag: while focused the widget observes every mouse press the
//     host forwards, which is how outside-click dismissal works. Focus and
//     Blur form a scoped acquisition/release pair; Blur is idempotent and
//     must be called when the widget is torn down.
//
// The selected value is owned by the caller. It seeds the widget at
// construction time, is updated when the user clicks an option, and can be
// resynchronized at any point with SetSelected; the trigger label is
// recomputed from it on every View.
//
// # Usage Pattern
//
// Hosts embed the model, forward messages, and position the widget in cell
// space so hit testing lines up with the rendered output:
//
//	dd := dropdown.New(dropdown.Config{
//	    Options:     dropdown.StringOptions([]string{"A", "B", "C"}),
//	    Placeholder: "Pick one",
//	    OnSelect:    func(value string) { /* informed exactly once */ },
//	})
//	dd.Focus()
//	dd.SetPosition(4, 2)
//
//	// in the host's Update:
//	m.dropdown, cmd = m.dropdown.Update(msg)
//
// Selections are also delivered as a dropdown.SelectedMsg through the
// returned command, for hosts that prefer message passing over callbacks.
//
// The program must be started with mouse reporting enabled
// (tea.WithMouseCellMotion) for the widget to receive clicks.
//
// # Degraded States
//
// None of these are errors: an empty option set renders an empty list (the
// open widget is just the trigger), duplicate options render twice and the
// last one clicked wins, and a selected value matching no option leaves every
// row unmarked while the trigger shows the value verbatim.
package dropdown
