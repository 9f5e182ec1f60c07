package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lawpack-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lawpack-cli/internal/core/services"
)

var (
	verifyDB     string
	verifyReport string
	verifyProbes []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a built database and write the integration report",
	Long: `Re-queries a built database: row counts, distinct law types, and
full-text probe queries. Writes the results as a JSON report and prints
console diagnostics. Exits non-zero when any check fails.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDB, "db", "lawpack.db", "database path to verify")
	verifyCmd.Flags().StringVar(&verifyReport, "report", "verify_report.json", "JSON report output path")
	verifyCmd.Flags().StringArrayVar(&verifyProbes, "probe", nil, "full-text probe term (repeatable)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.Open(verifyDB, false)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // read-only queries

	probes := verifyProbes
	if len(probes) == 0 {
		probes = file.DefaultProbes()
	}

	verifier := services.NewVerifier(store, verifyDB)
	report, err := verifier.Verify(cmd.Context(), probes)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	cmd.Printf("Documents: %d\n", report.DocumentCount)
	cmd.Printf("Articles:  %d\n", report.ArticleCount)
	cmd.Printf("Chunks:    %d\n", report.ChunkCount)
	cmd.Printf("Law types: %s\n", strings.Join(report.LawTypes, ", "))
	for _, probe := range report.Probes {
		cmd.Printf("Probe %q: %d hits\n", probe.Term, probe.Hits)
	}

	if err := services.WriteReport(report, verifyReport); err != nil {
		return err
	}
	cmd.Printf("Report written to %s\n", verifyReport)

	if !report.Passed {
		return fmt.Errorf("verification failed for %s", verifyDB)
	}
	cmd.Println("Verification passed.")
	return nil
}
