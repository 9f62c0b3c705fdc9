// Package config loads the modelfix configuration: the global config file
// merged with a project-local one, both JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/catwalk/pkg/catwalk"
	jsons "github.com/qjebbs/go-jsons"
	"github.com/tidwall/sjson"

	"github.com/charmbracelet/modelfix/internal/catalog"
)

const (
	appName        = "modelfix"
	configFilename = "modelfix.json"
	logFilename    = "modelfix.log"
)

// ProviderConfig extends the built-in catalog with extra providers or extra
// models for a known provider.
type ProviderConfig struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Models []string `json:"models"`
}

type Defaults struct {
	// CorrectionModel is the model used when a correction request leaves
	// correction_model empty, e.g. "gemini/gemini-2.5-pro".
	CorrectionModel string `json:"correction_model,omitempty"`
}

type Options struct {
	Debug         bool   `json:"debug,omitempty"`
	DataDirectory string `json:"data_directory,omitempty"`
}

type Config struct {
	Providers []ProviderConfig `json:"providers,omitempty"`
	Defaults  Defaults         `json:"defaults,omitempty"`
	Options   *Options         `json:"options,omitempty"`

	// Internal
	globalConfigPath string `json:"-"`
}

// GlobalConfig returns the path of the global config file.
func GlobalConfig() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName, configFilename)
	}
	return filepath.Join("."+appName, configFilename)
}

// Load reads the global config and merges the project-local config file in
// workingDir over it. Missing files are fine; an empty config is valid.
func Load(workingDir string) (*Config, error) {
	sources := []any{[]byte("{}")}
	for _, path := range []string{GlobalConfig(), filepath.Join(workingDir, configFilename)} {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		sources = append(sources, data)
	}

	merged, err := jsons.Merge(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to merge config files: %w", err)
	}

	cfg := &Config{globalConfigPath: GlobalConfig()}
	if err := json.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Options == nil {
		cfg.Options = &Options{}
	}
	if cfg.Options.DataDirectory == "" {
		cfg.Options.DataDirectory = filepath.Dir(GlobalConfig())
	}
	return cfg, nil
}

// LogFile returns the path of the log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.Options.DataDirectory, logFilename)
}

// Catalog builds the model catalog: built-in providers plus the extensions
// from this config, immutable afterwards.
func (c *Config) Catalog() *catalog.Catalog {
	providers := catalog.DefaultProviders()
	for _, p := range c.Providers {
		models := make([]catwalk.Model, len(p.Models))
		for i, id := range p.Models {
			models[i] = catwalk.Model{ID: id, Name: id}
		}
		providers = append(providers, catwalk.Provider{
			ID:     catwalk.InferenceProvider(p.ID),
			Name:   p.Name,
			Models: models,
		})
	}
	return catalog.New(providers...)
}

// SetConfigField writes a single field into the global config file, creating
// it if needed.
func (c *Config) SetConfigField(key string, value any) error {
	data, err := os.ReadFile(c.globalConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		data = []byte("{}")
	}

	newValue, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("failed to set config field %s: %w", key, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.globalConfigPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.globalConfigPath, []byte(newValue), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
