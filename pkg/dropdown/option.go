package dropdown

// Option is a single selectable entry in the dropdown list.
//
// Key is the value reported to the owner when the option is selected.
// Label is the text displayed in the option list and in the trigger once
// the option is chosen. For plain string choices the two are identical
// (see StringOptions).
type Option struct {
	Key   string
	Label string
}

// StringOptions converts plain display strings into options whose key and
// label are the same string. Order is preserved. Duplicate entries are kept
// as-is; the widget renders both and the last one clicked wins.
func StringOptions(labels []string) []Option {
	options := make([]Option, len(labels))
	for i, label := range labels {
		options[i] = Option{Key: label, Label: label}
	}
	return options
}

// SelectedMsg is emitted (via the tea.Cmd returned from Update) after the
// user clicks an option. Hosts that prefer message passing over the OnSelect
// callback can consume this in their own Update.
type SelectedMsg struct {
	Option Option
}
