package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/modelfix/internal/correction"
)

const CorrectionToolName = "magic_model_correction"

type CorrectionParams struct {
	Provider        string `json:"provider"`
	Model           string `json:"model"`
	CorrectionModel string `json:"correction_model"`
}

type CorrectionResponseMetadata struct {
	Corrected bool `json:"corrected"`
	Score     int  `json:"score"`
}

type correctionTool struct {
	corrector              *correction.Corrector
	defaultCorrectionModel string
}

// NewCorrectionTool exposes the corrector as a tool. defaultCorrectionModel
// is used when the caller leaves correction_model empty.
func NewCorrectionTool(corrector *correction.Corrector, defaultCorrectionModel string) BaseTool {
	return &correctionTool{
		corrector:              corrector,
		defaultCorrectionModel: defaultCorrectionModel,
	}
}

func (t *correctionTool) Name() string {
	return CorrectionToolName
}

func (t *correctionTool) Info() ToolInfo {
	return ToolInfo{
		Name: CorrectionToolName,
		Description: `Corrects a possibly wrong model name for a provider.

WHEN TO USE THIS TOOL:
- Use when a model name may be misspelled or slightly off (e.g. "gpt4o" instead of "gpt-4o")
- Useful before passing a model name to a provider API

HOW TO USE:
- Provide the provider name and the model name to check
- Optionally provide a correction_model naming the AI model a smarter correction pass should use

NOTES:
- Always returns a usable model name; if no close match exists the input is returned unchanged
- Matching is based on the provider's known model list`,
		Parameters: map[string]any{
			"provider": map[string]any{
				"type":        "string",
				"description": "Provider name, e.g. \"openai\" or \"anthropic\"",
			},
			"model": map[string]any{
				"type":        "string",
				"description": "Model name to correct",
			},
			"correction_model": map[string]any{
				"type":        "string",
				"description": "Model to use for the correction, e.g. \"gemini/gemini-2.5-pro\"",
			},
		},
		Required: []string{"provider", "model"},
	}
}

func (t *correctionTool) Run(ctx context.Context, call ToolCall) (ToolResponse, error) {
	var params CorrectionParams
	if err := json.Unmarshal([]byte(call.Input), &params); err != nil {
		return NewTextErrorResponse(fmt.Sprintf("error parsing parameters: %s", err)), nil
	}
	if params.Provider == "" || params.Model == "" {
		return NewTextErrorResponse("provider and model are required"), nil
	}
	if params.CorrectionModel == "" {
		params.CorrectionModel = t.defaultCorrectionModel
	}

	result := t.corrector.Evaluate(params.Provider, params.Model, params.CorrectionModel)
	return WithResponseMetadata(
		NewTextResponse(result.Model),
		CorrectionResponseMetadata{Corrected: result.Corrected, Score: result.Score},
	), nil
}
