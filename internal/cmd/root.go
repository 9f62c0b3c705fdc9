package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/modelfix/internal/config"
	"github.com/charmbracelet/modelfix/internal/correction"
	"github.com/charmbracelet/modelfix/internal/log"
	"github.com/charmbracelet/modelfix/internal/server"
	"github.com/charmbracelet/modelfix/internal/tools"
	"github.com/charmbracelet/modelfix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "modelfix",
	Short: "Model-name correction for tool-calling agents",
	Long: `Modelfix corrects possibly wrong model names against a catalog of known
provider models. Run without arguments it serves the correction tool over MCP
on stdio, for use from an agent's MCP configuration.`,
	Example: `
# Serve the correction tool over MCP on stdio
modelfix

# Correct a model name once
modelfix correct openai gpt4o

# List the known models of a provider
modelfix catalog anthropic
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, corrector, err := setup(cmd)
		if err != nil {
			return err
		}
		registry := tools.NewRegistry(
			tools.NewCorrectionTool(corrector, cfg.Defaults.CorrectionModel),
		)
		slog.Info("serving MCP on stdio", "version", version.Version)
		return server.New(registry).ServeStdio()
	},
}

// setup loads the config, points logging at the configured file, and builds
// the corrector over the configured catalog.
func setup(cmd *cobra.Command) (*config.Config, *correction.Corrector, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	log.Setup(cfg.LogFile(), debug || cfg.Options.Debug)
	return cfg, correction.New(cfg.Catalog()), nil
}

func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
