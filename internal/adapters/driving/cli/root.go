// Package cli implements the joltage command line with cobra.
// Services are injected by main before Execute runs.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/core/ports/driving"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// ConfigDirEnv names the environment variable overriding the config directory.
const ConfigDirEnv = "JOLTAGE_CONFIG_DIR"

// version is set at build time via SetVersion.
var version = "dev"

var (
	joltageService  driving.JoltageService
	settingsService driving.SettingsService

	bootstrap func(Options) error
)

// Global flags.
var (
	verbose   bool
	configDir string
)

// Options carries the global flags needed to build services.
type Options struct {
	// ConfigDir is the configuration directory. Empty selects the default.
	ConfigDir string

	Verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "joltage",
	Short: "Sum the maximum 12-digit joltage of every battery bank",
	Long: `joltage reads battery banks, one line of digits per bank, and keeps
for each bank the largest 12-digit number whose digits appear in order.
The per-bank maxima are summed into a single total.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap == nil {
			return nil
		}
		return bootstrap(Options{ConfigDir: resolveConfigDir(), Verbose: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.joltage, or $"+ConfigDirEnv+")")
}

// resolveConfigDir applies flag > environment > default precedence.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	return os.Getenv(ConfigDirEnv)
}

// SetVersion sets the version reported by the version command and the MCP server.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services once flags are parsed.
func SetBootstrap(fn func(Options) error) {
	bootstrap = fn
}

// SetJoltageService injects the joltage service.
func SetJoltageService(s driving.JoltageService) {
	joltageService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
