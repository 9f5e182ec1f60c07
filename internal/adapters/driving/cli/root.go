// Package cli is the cobra command surface. Commands construct their own
// adapters from flags; the core services see only ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawpack-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lawpack",
	Short: "Build and verify searchable legal-reference databases",
	Long: `lawpack converts a directory of Chinese law documents (.docx, .pdf,
.txt, .md) into a single SQLite database with full-text search, segmented
into articles with derived keywords and bounded-length chunks.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
