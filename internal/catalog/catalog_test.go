package catalog

import (
	"testing"

	"github.com/charmbracelet/catwalk/pkg/catwalk"
	"github.com/stretchr/testify/require"
)

func TestLookupCaseInsensitive(t *testing.T) {
	cat := Default()

	for _, id := range []string{"openai", "OpenAI", "OPENAI", " openai "} {
		p, ok := cat.Lookup(id)
		require.True(t, ok, "lookup %q should succeed", id)
		require.Equal(t, catwalk.InferenceProviderOpenAI, p.ID)
	}

	_, ok := cat.Lookup("unknownprovider")
	require.False(t, ok)
}

func TestModelIDsPreserveOrder(t *testing.T) {
	cat := Default()

	ids := cat.ModelIDs("openai")
	require.NotEmpty(t, ids)
	// The corrector's tie-break depends on gpt-4o being listed first.
	require.Equal(t, "gpt-4o", ids[0])

	require.Nil(t, cat.ModelIDs("unknownprovider"))
}

func TestNewDropsInvalidEntries(t *testing.T) {
	cat := New(
		catwalk.Provider{ID: "", Name: "nameless", Models: []catwalk.Model{{ID: "m1"}}},
		catwalk.Provider{ID: "empty", Name: "Empty"},
		catwalk.Provider{ID: "ok", Models: []catwalk.Model{{ID: ""}, {ID: "m1"}, {ID: "  "}}},
	)

	require.Len(t, cat.Providers(), 1)
	require.Equal(t, []string{"m1"}, cat.ModelIDs("ok"))
}

func TestNewMergesDuplicateProviders(t *testing.T) {
	cat := New(
		catwalk.Provider{ID: "openai", Models: []catwalk.Model{{ID: "gpt-4o"}, {ID: "gpt-4"}}},
		catwalk.Provider{ID: "OpenAI", Models: []catwalk.Model{{ID: "gpt-4"}, {ID: "gpt-4.1"}}},
	)

	require.Len(t, cat.Providers(), 1)
	require.Equal(t, []string{"gpt-4o", "gpt-4", "gpt-4.1"}, cat.ModelIDs("openai"))
}

func TestDefaultCatalogIsSane(t *testing.T) {
	cat := Default()

	for _, p := range cat.Providers() {
		require.NotEmpty(t, p.Models, "provider %s should have models", p.ID)
		for _, m := range p.Models {
			require.NotEmpty(t, m.ID, "provider %s has a model with empty ID", p.ID)
		}
	}

	for _, provider := range []string{"openai", "anthropic", "gemini", "groq", "openrouter", "ollama"} {
		_, ok := cat.Lookup(provider)
		require.True(t, ok, "expected built-in provider %s", provider)
	}
}
