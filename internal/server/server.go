// Package server serves the registered tools over MCP on stdio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/charmbracelet/modelfix/internal/tools"
	"github.com/charmbracelet/modelfix/internal/version"
)

type Server struct {
	mcp *mcpserver.MCPServer
}

// New builds an MCP server exposing every tool in the registry.
func New(registry tools.Registry) *Server {
	s := mcpserver.NewMCPServer(
		"modelfix",
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, tool := range registry.GetAllTools() {
		s.AddTool(toMCPTool(tool.Info()), handler(tool))
	}
	return &Server{mcp: s}
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}

func toMCPTool(info tools.ToolInfo) mcp.Tool {
	required := info.Required
	if required == nil {
		required = make([]string, 0)
	}
	schema, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": info.Parameters,
		"required":   required,
	})
	if err != nil {
		// Parameter maps are built from literals; this should not happen.
		slog.Error("failed to marshal tool schema", "tool", info.Name, "error", err)
		schema = []byte(`{"type":"object"}`)
	}
	return mcp.NewToolWithRawSchema(info.Name, info.Description, schema)
}

func handler(tool tools.BaseTool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := json.Marshal(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("error encoding arguments: %s", err)), nil
		}
		call := tools.ToolCall{
			ID:    uuid.NewString(),
			Name:  tool.Name(),
			Input: string(input),
		}
		slog.Info("tool call", "id", call.ID, "tool", call.Name)

		response, err := tool.Run(ctx, call)
		if err != nil {
			slog.Error("tool call failed", "id", call.ID, "tool", call.Name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		if response.IsError {
			return mcp.NewToolResultError(response.Content), nil
		}
		return mcp.NewToolResultText(response.Content), nil
	}
}
