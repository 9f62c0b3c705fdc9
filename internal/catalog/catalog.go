// Package catalog holds the static provider → model table the corrector
// matches against. The table is ordered and immutable after construction.
package catalog

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/catwalk/pkg/catwalk"
)

// Catalog is an ordered, read-only provider table. Provider lookups are
// case-insensitive; model order inside a provider is declaration order.
type Catalog struct {
	providers []catwalk.Provider
	index     map[string]int
}

// New builds a catalog from the given providers. Providers with an empty ID
// or no usable models are dropped, empty model IDs are dropped, and a
// provider declared twice has its models appended to the first declaration.
func New(providers ...catwalk.Provider) *Catalog {
	c := &Catalog{index: make(map[string]int, len(providers))}
	for _, p := range providers {
		id := strings.ToLower(strings.TrimSpace(string(p.ID)))
		if id == "" {
			slog.Warn("dropping provider with empty id", "name", p.Name)
			continue
		}
		models := make([]catwalk.Model, 0, len(p.Models))
		for _, m := range p.Models {
			if strings.TrimSpace(m.ID) == "" {
				slog.Warn("dropping model with empty id", "provider", id)
				continue
			}
			models = append(models, m)
		}
		if i, ok := c.index[id]; ok {
			c.providers[i].Models = appendNewModels(c.providers[i].Models, models)
			continue
		}
		if len(models) == 0 {
			slog.Warn("dropping provider with no models", "provider", id)
			continue
		}
		p.Models = models
		c.index[id] = len(c.providers)
		c.providers = append(c.providers, p)
	}
	return c
}

func appendNewModels(existing, extra []catwalk.Model) []catwalk.Model {
	for _, m := range extra {
		if !slices.ContainsFunc(existing, func(e catwalk.Model) bool { return e.ID == m.ID }) {
			existing = append(existing, m)
		}
	}
	return existing
}

// Lookup returns the provider for the given ID, matched case-insensitively.
func (c *Catalog) Lookup(provider string) (catwalk.Provider, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return catwalk.Provider{}, false
	}
	return c.providers[i], true
}

// ModelIDs returns the ordered model IDs for the given provider, or nil when
// the provider is unknown.
func (c *Catalog) ModelIDs(provider string) []string {
	p, ok := c.Lookup(provider)
	if !ok {
		return nil
	}
	ids := make([]string, len(p.Models))
	for i, m := range p.Models {
		ids[i] = m.ID
	}
	return ids
}

// Providers returns the providers in declaration order.
func (c *Catalog) Providers() []catwalk.Provider {
	return slices.Clone(c.providers)
}
