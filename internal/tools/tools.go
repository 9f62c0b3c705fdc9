// Package tools defines the tool interface the MCP server exposes and an
// ordered registry of the tools modelfix ships.
package tools

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
)

type ToolInfo struct {
	Name        string
	Description string
	Parameters  map[string]any
	Required    []string
}

type toolResponseType string

const (
	ToolResponseTypeText toolResponseType = "text"
)

type ToolResponse struct {
	Type     toolResponseType `json:"type"`
	Content  string           `json:"content"`
	Metadata string           `json:"metadata,omitempty"`
	IsError  bool             `json:"is_error"`
}

func NewTextResponse(content string) ToolResponse {
	return ToolResponse{
		Type:    ToolResponseTypeText,
		Content: content,
	}
}

func NewTextErrorResponse(content string) ToolResponse {
	return ToolResponse{
		Type:    ToolResponseTypeText,
		Content: content,
		IsError: true,
	}
}

func WithResponseMetadata(response ToolResponse, metadata any) ToolResponse {
	if metadata != nil {
		metadataBytes, err := json.Marshal(metadata)
		if err != nil {
			return response
		}
		response.Metadata = string(metadataBytes)
	}
	return response
}

type ToolCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

type BaseTool interface {
	Info() ToolInfo
	Name() string
	Run(ctx context.Context, params ToolCall) (ToolResponse, error)
}

// Registry holds tools in registration order.
type Registry interface {
	GetTool(name string) (BaseTool, bool)
	GetAllTools() []BaseTool
}

type registry struct {
	mu    sync.RWMutex
	tools []BaseTool
}

func (r *registry) GetAllTools() []BaseTool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tools)
}

func (r *registry) GetTool(name string) (BaseTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tool := range r.tools {
		if tool.Name() == name {
			return tool, true
		}
	}
	return nil, false
}

func NewRegistry(tools ...BaseTool) Registry {
	return &registry{tools: tools}
}
