// ABOUTME: CLI command to run the MCP server over stdio
// ABOUTME: Exposes ask_documents and generate_quiz as MCP tools
package commands

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tutorstack/tutor/internal/mcp"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Run the MCP server on stdio.

Exposes the answer and quiz pipelines as MCP tools so LLM clients can
query the indexed course material directly.`,
		RunE: runMCP,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := bootstrapApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	server := mcpserver.NewMCPServer("Tutor RAG Server", "0.1.0")
	mcp.RegisterTools(server, application.Answers, application.Quizzes)

	return mcpserver.ServeStdio(server)
}
