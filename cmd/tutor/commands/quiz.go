// ABOUTME: CLI command to generate a quiz from the indexed material
// ABOUTME: Prints validated MCQs or the degraded outcome message
package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tutorstack/tutor/internal/models"
)

// NewQuizCmd creates the quiz command.
func NewQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz <prompt>",
		Short: "Generate multiple-choice questions on a topic",
		Long: `Generate multiple-choice questions on a topic.

Append easy, medium, or hard to the prompt to pick a difficulty band;
the default is medium.

Examples:
  tutor quiz "photosynthesis easy"
  tutor quiz --format json "neural networks hard"`,
		Args: cobra.ExactArgs(1),
		RunE: runQuiz,
	}

	return cmd
}

func runQuiz(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	application, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	result := application.Quizzes.GenerateQuiz(ctx, args[0])
	if result.Outcome == models.QuizFailed {
		return fmt.Errorf("generating quiz: %w", result.Err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	switch result.Outcome {
	case models.QuizNoContext:
		fmt.Fprintf(cmd.OutOrStdout(), "No relevant content found for topic: %s\n", result.Topic)
	case models.QuizExhausted:
		fmt.Fprintln(cmd.OutOrStdout(), "No valid MCQs generated. Try modifying the topic.")
	default:
		printMCQs(cmd, result)
	}
	return nil
}

func printMCQs(cmd *cobra.Command, result models.QuizResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "Quiz on %q (%s)\n\n", result.Topic, result.Difficulty)
	for i, mcq := range result.MCQs {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s [difficulty %d]\n", i+1, mcq.Question, mcq.Difficulty)

		letters := make([]string, 0, len(mcq.Options))
		for letter := range mcq.Options {
			letters = append(letters, letter)
		}
		sort.Strings(letters)
		for _, letter := range letters {
			fmt.Fprintf(cmd.OutOrStdout(), "   %s) %s\n", letter, mcq.Options[letter])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "   Answer: %s\n\n", mcq.Answer)
	}
}
