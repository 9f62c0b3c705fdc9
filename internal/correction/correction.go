// Package correction implements model-name correction: given a provider and
// a possibly wrong model ID, it returns the closest known model ID from the
// provider's catalog, or the input unchanged when nothing is close enough.
package correction

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/modelfix/internal/catalog"
)

// minPrefixScore is the smallest common-prefix length accepted as a
// correction. Anything below it keeps the input unchanged.
const minPrefixScore = 3

// AdvisorFunc asks an AI model to suggest a correction, typically by routing
// through the caller's correction_model. A suggestion is only accepted when
// it names a model the provider's catalog actually knows.
type AdvisorFunc func(provider, model, correctionModel string) (string, error)

// Result describes a correction decision. Score is the winning common-prefix
// length when the scorer ran; it stays zero for exact hits, advisor
// suggestions, and unknown providers.
type Result struct {
	Model     string `json:"model"`
	Score     int    `json:"score"`
	Corrected bool   `json:"corrected"`
}

// Corrector corrects model names against a read-only catalog.
type Corrector struct {
	catalog *catalog.Catalog
	advisor AdvisorFunc
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithAdvisor sets the AI correction hook.
func WithAdvisor(fn AdvisorFunc) Option {
	return func(c *Corrector) {
		c.advisor = fn
	}
}

// New returns a Corrector over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Corrector {
	c := &Corrector{catalog: cat}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Correct returns the corrected model ID for the given provider. It is a
// total function: it never returns an error and never panics, and every
// failure path degrades to returning model unchanged so callers always get
// a usable string back.
func (c *Corrector) Correct(provider, model, correctionModel string) string {
	return c.Evaluate(provider, model, correctionModel).Model
}

// Evaluate is Correct with the full decision attached. It carries the same
// total-function contract: any internal fault maps to the identity result.
// correctionModel is handed to the advisor hook when one is set; the prefix
// scorer itself never consults it.
func (c *Corrector) Evaluate(provider, model, correctionModel string) (result Result) {
	result = Result{Model: model}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("model correction failed", "provider", provider, "model", model, "panic", r)
			result = Result{Model: model}
		}
	}()

	slog.Info("model correction request",
		"provider", provider,
		"model", model,
		"correction_model", correctionModel,
	)

	candidates := c.catalog.ModelIDs(provider)
	if len(candidates) == 0 {
		slog.Debug("unknown provider, keeping model as-is", "provider", provider)
		return result
	}

	// Exact hits are valid already; matching is case-sensitive here so a
	// differently cased input still gets normalized by the scorer below.
	if slices.Contains(candidates, model) {
		slog.Debug("model already known", "provider", provider, "model", model)
		return result
	}

	if suggestion, ok := c.advise(provider, model, correctionModel, candidates); ok {
		return Result{Model: suggestion, Corrected: suggestion != model}
	}

	best, score := bestMatch(model, candidates)
	result.Score = score
	if score < minPrefixScore {
		slog.Info("no close match, keeping model as-is",
			"provider", provider, "model", model, "best_score", score)
		return result
	}

	slog.Info("corrected model name",
		"provider", provider, "from", model, "to", best, "score", score)
	result.Model = best
	result.Corrected = true
	return result
}

// advise runs the AI correction hook when one is configured. Suggestions
// outside the candidate list and advisor errors both fall back to the
// prefix scorer.
func (c *Corrector) advise(provider, model, correctionModel string, candidates []string) (string, bool) {
	if c.advisor == nil {
		return "", false
	}
	suggestion, err := c.advisor(provider, model, correctionModel)
	if err != nil {
		slog.Error("correction advisor failed, falling back to prefix scoring",
			"provider", provider, "model", model, "error", err)
		return "", false
	}
	if !slices.Contains(candidates, suggestion) {
		slog.Warn("correction advisor suggested unknown model, falling back to prefix scoring",
			"provider", provider, "model", model, "suggestion", suggestion)
		return "", false
	}
	slog.Info("corrected model name via advisor",
		"provider", provider, "from", model, "to", suggestion, "correction_model", correctionModel)
	return suggestion, true
}

var defaultCorrector = New(catalog.Default())

// Correct corrects a model name against the built-in catalog. Hosts that
// extend the catalog from configuration should build their own Corrector.
func Correct(provider, model, correctionModel string) string {
	return defaultCorrector.Correct(provider, model, correctionModel)
}

// bestMatch returns the candidate with the longest case-insensitive common
// prefix with model. Ties go to the first-listed candidate since the
// comparison is strict.
func bestMatch(model string, candidates []string) (string, int) {
	var best string
	var bestScore int
	for _, candidate := range candidates {
		if score := commonPrefixLen(model, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore
}

// commonPrefixLen counts matching leading characters, compared
// case-insensitively, stopping at the first mismatch or at the end of the
// shorter string.
func commonPrefixLen(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	n := min(len(a), len(b))
	var i int
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
