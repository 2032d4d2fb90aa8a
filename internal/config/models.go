package config

// Registry represents the entire user configuration file.
// It stores the demo's option set, placeholder text, and the most recently
// selected value so a new session can start where the last one ended.
type Registry struct {
	Version      int          `yaml:"version"`
	Placeholder  string       `yaml:"placeholder,omitempty"`
	Options      []OptionSpec `yaml:"options,omitempty"`       // Ordered; rendered top to bottom
	LastSelected string       `yaml:"last_selected,omitempty"` // Option key of the previous selection
	Preferences  *Preferences `yaml:"preferences,omitempty"`
}

// OptionSpec is one selectable entry as written in the configuration file.
// Label may be omitted, in which case the key doubles as the display text.
type OptionSpec struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label,omitempty"`
}

// DisplayLabel returns the label, falling back to the key.
func (o OptionSpec) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Key
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	SaveSelection bool `yaml:"save_selection"` // Persist the chosen value after each selection
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Placeholder: "Pick one",
		Preferences: &Preferences{
			SaveSelection: true,
		},
	}
}

// RememberSelection records the chosen option key for the next session.
func (r *Registry) RememberSelection(key string) {
	r.LastSelected = key
}
