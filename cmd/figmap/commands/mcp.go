package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/figmap-dev/figmap/pkg/config"
	"github.com/figmap-dev/figmap/pkg/mcp"
	"github.com/figmap-dev/figmap/pkg/observability"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var (
		debug      bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes figmap capabilities as tools that AI agents can
discover and invoke:
  - figmap_classify: Classify a design tree and bind its layers to slots
  - figmap_schemas: List the slot schemas for every supported archetype`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			obsCfg := buildObservabilityConfig(cfg, observability.ModeMCP)
			if isQuiet(cobraCmd) {
				obsCfg.LogLevel = slog.LevelError
			}

			// --debug wins over --quiet.
			if debug {
				obsCfg.LogLevel = slog.LevelDebug
				obsCfg.DebugTrace = true
			}

			providers, err := observability.Init(obsCfg)
			if err != nil {
				return err
			}

			defer func() {
				shutdownErr := providers.Shutdown(context.Background())
				if shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			red, redErr := observability.NewREDMetrics(providers.Meter)
			if redErr != nil {
				return redErr
			}

			deps := mcp.ServerDeps{Logger: providers.Logger, Metrics: red, Tracer: providers.Tracer}

			srv := mcp.NewServer(deps)

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: figmap.yaml discovery)")

	return cmd
}
