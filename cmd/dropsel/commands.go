package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/dropsel/internal/config"
	"github.com/muurk/dropsel/internal/demo"
	"github.com/muurk/dropsel/internal/logging"
	"github.com/muurk/dropsel/pkg/dropdown"
)

// Demo command flags
var (
	optionsFlag     string
	placeholderFlag string
	selectedFlag    string
	configPathFlag  string
	noSaveFlag      bool
)

// defaultOptions is used when neither flags nor the config file provide any.
var defaultOptions = []string{"Red", "Green", "Blue"}

func init() {
	rootCmd.Flags().StringVar(&optionsFlag, "options", "", "Comma-separated option labels (overrides the config file)")
	rootCmd.Flags().StringVar(&placeholderFlag, "placeholder", "", "Trigger label shown before any selection")
	rootCmd.Flags().StringVar(&selectedFlag, "selected", "", "Initial selection (option key)")
	rootCmd.Flags().StringVar(&configPathFlag, "config", "", "Path to the config file (default: OS config dir)")
	rootCmd.Flags().BoolVar(&noSaveFlag, "no-save", false, "Do not persist the selection to the config file")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	var registry *config.Registry
	configPath := configPathFlag
	if configPath == "" {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		configPath = path
		registry, err = config.LoadRegistry()
		if err != nil {
			return err
		}
	} else {
		loaded, err := config.LoadFrom(configPath)
		if err != nil {
			return err
		}
		registry = loaded
	}
	logging.LogConfig(configPath, len(registry.Options))

	model := demo.NewModel(demo.Config{
		Options:     resolveOptions(registry),
		Placeholder: resolvePlaceholder(registry),
		Selected:    resolveSelected(registry),
		Registry:    registry,
		ConfigPath:  configPath,
		Save:        !noSaveFlag && registry.Preferences.SaveSelection,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	// Print the final choice so the binary doubles as a simple picker.
	if m, ok := finalModel.(demo.Model); ok && m.LastSelected() != "" {
		fmt.Println(m.LastSelected())
	}

	return nil
}

// resolveOptions picks the option set by priority: --options flag, then the
// config file, then the built-in defaults.
func resolveOptions(registry *config.Registry) []dropdown.Option {
	if optionsFlag != "" {
		return dropdown.StringOptions(splitOptions(optionsFlag))
	}

	if len(registry.Options) > 0 {
		options := make([]dropdown.Option, len(registry.Options))
		for i, spec := range registry.Options {
			options[i] = dropdown.Option{Key: spec.Key, Label: spec.DisplayLabel()}
		}
		return options
	}

	return dropdown.StringOptions(defaultOptions)
}

// resolvePlaceholder picks the placeholder: --placeholder flag, then the
// config file, then the registry default.
func resolvePlaceholder(registry *config.Registry) string {
	if placeholderFlag != "" {
		return placeholderFlag
	}
	if registry.Placeholder != "" {
		return registry.Placeholder
	}
	return config.NewRegistry().Placeholder
}

// resolveSelected picks the initial selection: --selected flag, then the
// value remembered from the previous session (unless saving is disabled).
func resolveSelected(registry *config.Registry) string {
	if selectedFlag != "" {
		return selectedFlag
	}
	if !noSaveFlag && registry.Preferences.SaveSelection {
		return registry.LastSelected
	}
	return ""
}

// splitOptions parses the comma-separated --options value, trimming blanks
// and dropping empty entries.
func splitOptions(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}
