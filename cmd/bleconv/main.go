package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatVersion adds 'v' prefix if version starts with a digit
func formatVersion(ver string) string {
	if len(ver) > 0 && unicode.IsDigit(rune(ver[0])) {
		return "v" + ver
	}
	return ver
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bleconv",
	Short: "Inspect how native BLE values map onto the portable model",
	Long: `Converts Windows Runtime Bluetooth LE values into the portable device model
and back, using the same adapters the application uses:

- GATT communication status codes to canonical errors
- GUIDs to canonical UUIDs (and go-ble's byte order)
- Characteristic property bitmasks to capability flags
- IBuffer contents to byte sequences
- 64-bit Bluetooth addresses to device addresses

Useful when reading platform traces or writing adapter tests.`,
	Version: formatVersion(version),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print user-friendly error message
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", FormatUserError(err))
		os.Exit(1)
	}
}

func init() {
	// Silence Cobra's "Error:" prefix - main() prints clean errors
	rootCmd.SilenceErrors = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", commit, date))

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(uuidCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(bufferCmd)
	rootCmd.AddCommand(addrCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colorize text output (auto, always, never)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a YAML config file")

	// Add -v as a short flag for --version
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}
