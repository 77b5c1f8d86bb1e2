// ABOUTME: MCP tool definitions and registration for the tutor server
// ABOUTME: Exposes the answer and quiz pipelines as callable tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tutorstack/tutor/internal/rag"
)

// RegisterTools registers the tutor tools with the MCP server.
func RegisterTools(server *mcpserver.MCPServer, answers *rag.AnswerPipeline, quizzes *rag.QuizPipeline) *Handlers {
	handlers := &Handlers{
		answers: answers,
		quizzes: quizzes,
	}

	server.AddTool(mcp.Tool{
		Name:        "ask_documents",
		Description: "Answer a question using the indexed course material. Responses are grounded in retrieved document chunks.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the document corpus",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskDocuments)

	server.AddTool(mcp.Tool{
		Name:        "generate_quiz",
		Description: "Generate multiple-choice questions on a topic from the indexed course material. Append easy, medium, or hard to set difficulty.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"prompt": map[string]interface{}{
					"type":        "string",
					"description": "Topic, optionally followed by a difficulty keyword (e.g. \"photosynthesis easy\")",
				},
			},
			Required: []string{"prompt"},
		},
	}, handlers.GenerateQuiz)

	return handlers
}
