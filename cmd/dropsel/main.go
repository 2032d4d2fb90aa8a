// Dropsel is an interactive showcase for the dropdown selector widget.
//
// It renders a clickable dropdown in the terminal: click the trigger to open
// the option list, click an option to select it, click anywhere else to
// dismiss the list. Options come from flags, from the user configuration
// file, or from built-in defaults.
//
// Usage:
//
//	dropsel [flags]
//
// Running without arguments launches the demo with the configured options.
// See 'dropsel --help' for available flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/dropsel/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropsel",
	Short: "Clickable dropdown selector for the terminal",
	Long: `An interactive demo of the dropsel dropdown widget.

Click the trigger to open the option list, click an option to select it,
and click anywhere outside the widget to dismiss the list. The selected
value is printed on exit so the demo can be used as a simple picker.`,
	Version: version.Version,
	RunE:    runDemo,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dropsel %s (commit: %s)\n", version.Version, version.Commit)
	},
}
