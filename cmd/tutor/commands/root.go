// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for serve, ingest, ask, quiz, mcp, and version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	quiet        bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutor",
		Short: "RAG-backed tutoring API over your course material",
		Long: `Tutor answers questions and generates quizzes from PDF course
material stored in object storage, using retrieval-augmented generation.

Run 'tutor ingest' to build the search index, then 'tutor serve' to expose
the HTTP API, or query directly with 'tutor ask' and 'tutor quiz'.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewQuizCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
