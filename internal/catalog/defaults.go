package catalog

import "github.com/charmbracelet/catwalk/pkg/catwalk"

// Default returns the built-in catalog. The model order below is
// load-bearing: the corrector breaks score ties in favor of the
// first-listed model.
func Default() *Catalog {
	return New(DefaultProviders()...)
}

// DefaultProviders returns the built-in provider table. Callers that extend
// the catalog from configuration append to this slice before calling New.
func DefaultProviders() []catwalk.Provider {
	return []catwalk.Provider{
		{
			ID:          catwalk.InferenceProviderOpenAI,
			Name:        "OpenAI",
			APIEndpoint: "https://api.openai.com/v1",
			Type:        catwalk.TypeOpenAI,
			Models: []catwalk.Model{
				{ID: "gpt-4o", Name: "GPT-4o", ContextWindow: 128_000, DefaultMaxTokens: 16_384},
				{ID: "gpt-4o-mini", Name: "GPT-4o Mini", ContextWindow: 128_000, DefaultMaxTokens: 16_384},
				{ID: "gpt-4.1", Name: "GPT-4.1", ContextWindow: 1_047_576, DefaultMaxTokens: 32_768},
				{ID: "gpt-4.1-mini", Name: "GPT-4.1 Mini", ContextWindow: 1_047_576, DefaultMaxTokens: 32_768},
				{ID: "gpt-4", Name: "GPT-4", ContextWindow: 8_192, DefaultMaxTokens: 4_096},
				{ID: "gpt-4-turbo", Name: "GPT-4 Turbo", ContextWindow: 128_000, DefaultMaxTokens: 4_096},
				{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", ContextWindow: 16_385, DefaultMaxTokens: 4_096},
				{ID: "o3", Name: "o3", ContextWindow: 200_000, DefaultMaxTokens: 100_000, CanReason: true},
				{ID: "o3-mini", Name: "o3 Mini", ContextWindow: 200_000, DefaultMaxTokens: 100_000, CanReason: true},
				{ID: "o4-mini", Name: "o4 Mini", ContextWindow: 200_000, DefaultMaxTokens: 100_000, CanReason: true},
			},
		},
		{
			ID:          catwalk.InferenceProviderAnthropic,
			Name:        "Anthropic",
			APIEndpoint: "https://api.anthropic.com/v1",
			Type:        catwalk.TypeAnthropic,
			Models: []catwalk.Model{
				{ID: "claude-opus-4-20250514", Name: "Claude Opus 4", ContextWindow: 200_000, DefaultMaxTokens: 32_000, CanReason: true},
				{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", ContextWindow: 200_000, DefaultMaxTokens: 64_000, CanReason: true},
				{ID: "claude-3-7-sonnet-20250219", Name: "Claude 3.7 Sonnet", ContextWindow: 200_000, DefaultMaxTokens: 64_000, CanReason: true},
				{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", ContextWindow: 200_000, DefaultMaxTokens: 8_192},
				{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", ContextWindow: 200_000, DefaultMaxTokens: 8_192},
			},
		},
		{
			ID:          catwalk.InferenceProviderGemini,
			Name:        "Google Gemini",
			APIEndpoint: "https://generativelanguage.googleapis.com",
			Type:        catwalk.TypeGemini,
			Models: []catwalk.Model{
				{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", ContextWindow: 1_048_576, DefaultMaxTokens: 65_536, CanReason: true},
				{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", ContextWindow: 1_048_576, DefaultMaxTokens: 65_536, CanReason: true},
				{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", ContextWindow: 1_048_576, DefaultMaxTokens: 8_192},
				{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", ContextWindow: 2_097_152, DefaultMaxTokens: 8_192},
				{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", ContextWindow: 1_048_576, DefaultMaxTokens: 8_192},
			},
		},
		{
			ID:          catwalk.InferenceProvider("groq"),
			Name:        "Groq",
			APIEndpoint: "https://api.groq.com/openai/v1",
			Type:        catwalk.TypeOpenAI,
			Models: []catwalk.Model{
				{ID: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B", ContextWindow: 128_000, DefaultMaxTokens: 32_768},
				{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B", ContextWindow: 128_000, DefaultMaxTokens: 8_192},
				{ID: "qwen-qwq-32b", Name: "Qwen QwQ 32B", ContextWindow: 128_000, DefaultMaxTokens: 16_384, CanReason: true},
			},
		},
		{
			ID:          catwalk.InferenceProvider("openrouter"),
			Name:        "OpenRouter",
			APIEndpoint: "https://openrouter.ai/api/v1",
			Type:        catwalk.TypeOpenAI,
			Models: []catwalk.Model{
				{ID: "anthropic/claude-sonnet-4", Name: "Claude Sonnet 4", ContextWindow: 200_000, DefaultMaxTokens: 64_000, CanReason: true},
				{ID: "openai/gpt-4o", Name: "GPT-4o", ContextWindow: 128_000, DefaultMaxTokens: 16_384},
				{ID: "google/gemini-2.5-pro", Name: "Gemini 2.5 Pro", ContextWindow: 1_048_576, DefaultMaxTokens: 65_536, CanReason: true},
				{ID: "deepseek/deepseek-chat-v3-0324", Name: "DeepSeek V3", ContextWindow: 163_840, DefaultMaxTokens: 8_192},
			},
		},
		{
			ID:          catwalk.InferenceProvider("ollama"),
			Name:        "Ollama",
			APIEndpoint: "http://localhost:11434/v1",
			Type:        catwalk.TypeOpenAI,
			Models: []catwalk.Model{
				{ID: "llama3.3", Name: "Llama 3.3", ContextWindow: 128_000, DefaultMaxTokens: 4_096},
				{ID: "qwen2.5-coder", Name: "Qwen 2.5 Coder", ContextWindow: 32_768, DefaultMaxTokens: 4_096},
				{ID: "mistral", Name: "Mistral", ContextWindow: 32_768, DefaultMaxTokens: 4_096},
			},
		},
	}
}
