// Package config manages the user configuration file for the dropsel demo.
//
// The configuration is a YAML file stored in the OS-appropriate directory
// ($XDG_CONFIG_HOME/dropsel or $HOME/.config/dropsel on Unix,
// %LOCALAPPDATA%\dropsel on Windows). It carries the option set, the
// placeholder text, user preferences, and the most recently selected value
// so a new session can start where the last one ended.
//
// A missing file is never an error: loading falls back to a default
// registry so the demo runs out of the box. Loading from the default
// location is lazy and returns the same instance on repeated calls; saving
// is serialized by a file mutex.
package config
