// ABOUTME: MCP tool handler implementations for the tutor server
// ABOUTME: Pipeline outcomes map to tool results, never transport errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tutorstack/tutor/internal/models"
	"github.com/tutorstack/tutor/internal/rag"
)

// Handlers contains the handler functions for the tutor MCP tools.
type Handlers struct {
	answers *rag.AnswerPipeline
	quizzes *rag.QuizPipeline
}

// AskDocuments handles the ask_documents tool.
func (h *Handlers) AskDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.answers.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answer pipeline failed: %v", err)), nil
	}

	return mcp.NewToolResultText(answer), nil
}

// GenerateQuiz handles the generate_quiz tool.
func (h *Handlers) GenerateQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("prompt argument is required and must be a string"), nil
	}

	result := h.quizzes.GenerateQuiz(ctx, prompt)
	switch result.Outcome {
	case models.QuizSuccess:
		payload, err := json.MarshalIndent(map[string]any{
			"topic":      result.Topic,
			"difficulty": result.Difficulty,
			"mcqs":       result.MCQs,
		}, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal quiz: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	case models.QuizNoContext:
		return mcp.NewToolResultText(fmt.Sprintf("No relevant content found for topic: %s", result.Topic)), nil
	case models.QuizExhausted:
		return mcp.NewToolResultText("No valid MCQs generated. Try modifying the topic."), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("quiz pipeline failed: %v", result.Err)), nil
	}
}
