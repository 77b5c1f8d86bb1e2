// ABOUTME: CLI command to ask a question against the indexed material
// ABOUTME: Runs the answer pipeline directly without the HTTP layer
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the indexed documents",
		Long: `Answer a question from the indexed documents.

Retrieves the most relevant chunks and generates a grounded answer.

Examples:
  tutor ask "What is photosynthesis?"
  tutor ask --format json "Explain gradient descent"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	application, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	answer, err := application.Answers.Answer(ctx, args[0])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]string{
			"question": args[0],
			"answer":   answer,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
