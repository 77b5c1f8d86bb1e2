// ABOUTME: CLI command to rebuild the search index from stored documents
// ABOUTME: Prints a per-document success/failure report
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewIngestCmd creates the ingest command.
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Rebuild the search index from stored documents",
		Long: `Rebuild the search index from stored documents.

Lists PDFs under the configured storage prefix, extracts and chunks
their text, embeds every chunk, and replaces the persisted index.
Documents that cannot be parsed are skipped and reported.

Examples:
  tutor ingest
  tutor ingest --format json`,
		RunE: runIngest,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	application, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	report, err := application.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingesting documents: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Documents found:  %d\n", report.Total)
		fmt.Fprintf(cmd.OutOrStdout(), "Documents loaded: %d\n", report.Loaded)
		fmt.Fprintf(cmd.OutOrStdout(), "Documents failed: %d\n", report.Failed)
		fmt.Fprintf(cmd.OutOrStdout(), "Chunks indexed:   %d\n", report.Chunks)
	}
	return nil
}
