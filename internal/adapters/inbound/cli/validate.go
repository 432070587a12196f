package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/terravet/terravet/internal/adapters/outbound/config"
	"github.com/terravet/terravet/internal/adapters/outbound/gitinfo"
	"github.com/terravet/terravet/internal/adapters/outbound/history"
	"github.com/terravet/terravet/internal/adapters/outbound/report"
	"github.com/terravet/terravet/internal/adapters/outbound/scanner"
	"github.com/terravet/terravet/internal/adapters/outbound/tui"
	"github.com/terravet/terravet/internal/application"
	"github.com/terravet/terravet/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		strict      bool
		reportPath  string
		jsonOutput  bool
		verbose     bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a Terraform tree against organizational standards",
		Long:  "Run every registered check against a Terraform tree and report missing files, magic numbers, naming drift, documentation gaps and security findings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				return &exitError{code: 2, msg: fmt.Sprintf("path does not exist: %s", path)}
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewValidateService(scanner.New(), config.New())

			// A partial run is still rendered before the error surfaces.
			run, runErr := svc.ValidateTree(absPath, application.Options{Strict: strict})
			if run == nil {
				return fmt.Errorf("validation failed: %w", runErr)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				run.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.RunEntry{
				Timestamp:  run.Timestamp.Format(time.RFC3339),
				CommitHash: run.CommitHash,
				Total:      run.Summary.Total,
				Passed:     run.Summary.Passed,
				Failed:     run.Summary.Failed,
				AllPassed:  run.AllPassed(),
			}
			_ = hist.Save(absPath, entry) // best-effort

			// Show history if requested
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderTrend(entries))
				if runErr != nil {
					return fmt.Errorf("validation incomplete: %w", runErr)
				}
				return nil
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, run); err != nil {
					return err
				}
			case verbose:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunVerbose(run))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRun(run))
			}

			if reportPath != "" {
				if err := report.New().Write(reportPath, run); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report saved to: %s\n", reportPath)
			}

			if runErr != nil {
				return fmt.Errorf("validation incomplete: %w", runErr)
			}
			if !run.AllPassed() {
				return &exitError{code: 1}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Enable strict mode (reserved for check severity escalation)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Generate markdown report at specified path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run as JSON")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show every check grouped by family, not just failures")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show validation run history")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
