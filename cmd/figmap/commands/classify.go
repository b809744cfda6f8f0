// Package commands implements CLI command handlers for figmap.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/config"
	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/figma"
	"github.com/figmap-dev/figmap/pkg/observability"
	"github.com/figmap-dev/figmap/pkg/report"
	"github.com/figmap-dev/figmap/pkg/slotmap"
	"github.com/figmap-dev/figmap/pkg/version"
)

// Output format identifiers.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPlot     = "plot"
)

// stdinPath is the classify argument that selects standard input.
const stdinPath = "-"

var (
	// ErrNoInput is returned when neither a tree path nor a Figma file key
	// is given.
	ErrNoInput = errors.New(
		"no input selected. Pass a tree path (or '-' for stdin), or use --figma-file",
	)
	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown format. Available: text, json, markdown, plot")
)

// treeFetcher loads a design tree from the Figma API.
type treeFetcher func(ctx context.Context, cfg figma.Config, fileKey, nodeID string) (*design.Node, error)

// ClassifyCommand holds configuration and dependencies for the classify
// command.
type ClassifyCommand struct {
	format     string
	configPath string
	figmaFile  string
	nodeID     string
	floor      float64
	threshold  float64
	noColor    bool

	fetch treeFetcher
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand() *cobra.Command {
	return newClassifyCommandWithDeps(fetchFromFigma)
}

func newClassifyCommandWithDeps(fetch treeFetcher) *cobra.Command {
	cc := &ClassifyCommand{
		format: FormatText,
		fetch:  fetch,
	}

	cmd := &cobra.Command{
		Use:   "classify [tree.json|-]",
		Short: "Classify and slot-map a design tree",
		Long: "Classify design nodes into component archetypes and bind their " +
			"layers to slots. Reads a local tree document, stdin, or the Figma API.",
		Args: cobra.MaximumNArgs(1),
		RunE: cc.run,
	}

	cmd.Flags().StringVar(&cc.format, "format", FormatText, "Output format: text, json, markdown, plot")
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Config file path (default: figmap.yaml discovery)")
	cmd.Flags().StringVar(&cc.figmaFile, "figma-file", "", "Figma file key to fetch instead of a local tree")
	cmd.Flags().StringVar(&cc.nodeID, "node-id", "", "Node ID within the Figma file (requires --figma-file)")
	cmd.Flags().Float64Var(&cc.floor, "floor", 0, "Classification acceptance floor (0 = config value)")
	cmd.Flags().Float64Var(&cc.threshold, "threshold", 0, "Slot confidence threshold for suggestions (0 = config value)")
	cmd.Flags().BoolVar(&cc.noColor, "no-color", false, "Disable colored text output")

	return cmd
}

func (cc *ClassifyCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}

	obsCfg := buildObservabilityConfig(cfg, observability.ModeCLI)
	if isQuiet(cmd) {
		obsCfg.LogLevel = slog.LevelError
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

	root, source, err := cc.loadTree(cmd, args, cfg)
	if err != nil {
		return err
	}

	floor := cc.floor
	if floor == 0 {
		floor = cfg.Classify.Floor
	}

	threshold := cc.threshold
	if threshold == 0 {
		threshold = cfg.Slotmap.SafeThreshold
	}

	mapper := slotmap.NewMapperWithThreshold(slotmap.NewRegistry(), threshold)
	analyzer := report.NewAnalyzer(classify.NewClassifier(), mapper, floor)

	startedAt := time.Now()

	rep, err := analyzer.Analyze(source, root)
	if err != nil {
		return err
	}

	elapsed := time.Since(startedAt)

	providers.Logger.Info("analysis completed",
		slog.String("source", source),
		slog.Int("components", len(rep.Components)),
		slog.Duration("duration", elapsed),
	)

	for _, component := range rep.Components {
		providers.Logger.Debug("component analyzed",
			observability.ComponentAttrs(string(component.Classification.Archetype), component.Accepted)...)
	}

	recordMappingMetrics(cmd.Context(), providers, rep, elapsed)

	return cc.writeReport(cmd.OutOrStdout(), rep)
}

// loadTree resolves the input tree from the Figma API, a local file, or stdin.
func (cc *ClassifyCommand) loadTree(
	cmd *cobra.Command,
	args []string,
	cfg *config.Config,
) (*design.Node, string, error) {
	if cc.figmaFile != "" {
		root, err := cc.fetch(cmd.Context(), figma.Config{
			Token:        cfg.Figma.Token,
			BaseURL:      cfg.Figma.BaseURL,
			Timeout:      cfg.Figma.Timeout,
			CacheEntries: cfg.Figma.CacheEntries,
		}, cc.figmaFile, cc.nodeID)
		if err != nil {
			return nil, "", err
		}

		source := cc.figmaFile
		if cc.nodeID != "" {
			source += "#" + cc.nodeID
		}

		return root, source, nil
	}

	if len(args) == 0 {
		return nil, "", ErrNoInput
	}

	if args[0] == stdinPath {
		root, err := design.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, "", err
		}

		return root, "stdin", nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read tree %s: %w", args[0], err)
	}

	root, err := design.DecodeBytes(raw)
	if err != nil {
		return nil, "", err
	}

	return root, args[0], nil
}

func (cc *ClassifyCommand) writeReport(w io.Writer, rep *report.Report) error {
	switch cc.format {
	case FormatText:
		return report.WriteText(w, rep, report.TextOptions{NoColor: cc.noColor})
	case FormatJSON:
		return report.WriteJSON(w, rep)
	case FormatMarkdown:
		return report.WriteMarkdown(w, rep)
	case FormatPlot:
		return report.WritePlot(w, rep)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cc.format)
	}
}

func fetchFromFigma(ctx context.Context, cfg figma.Config, fileKey, nodeID string) (*design.Node, error) {
	client, err := figma.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if nodeID != "" {
		return client.Node(ctx, fileKey, nodeID)
	}

	return client.File(ctx, fileKey)
}

// recordMappingMetrics emits per-component instrumentation. The analyzer does
// not time individual components, so the run duration is spread evenly.
func recordMappingMetrics(ctx context.Context, providers observability.Providers, rep *report.Report, elapsed time.Duration) {
	mm, err := observability.NewMappingMetrics(providers.Meter)
	if err != nil {
		providers.Logger.Warn("mapping metrics unavailable", "error", err)

		return
	}

	if len(rep.Components) == 0 {
		return
	}

	perComponent := elapsed / time.Duration(len(rep.Components))

	for _, component := range rep.Components {
		stats := observability.ComponentStats{
			Archetype: string(component.Classification.Archetype),
			Accepted:  component.Accepted,
			Duration:  perComponent,
		}

		if component.Mapping != nil {
			stats.UnmetSlots = len(component.Mapping.Warnings)
			stats.Suggestions = len(component.Mapping.Suggestions)
		}

		mm.RecordComponent(ctx, stats)
	}
}

// buildObservabilityConfig maps the application config onto observability
// settings for the given mode.
func buildObservabilityConfig(cfg *config.Config, mode observability.AppMode) observability.Config {
	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Mode = mode
	obsCfg.Environment = cfg.Telemetry.Environment
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.DebugTrace = cfg.Telemetry.DebugTrace
	obsCfg.LogLevel = parseLogLevel(cfg.Logging.Level)
	obsCfg.LogJSON = cfg.Logging.Format == "json"

	if mode == observability.ModeMCP {
		obsCfg.LogJSON = true
	}

	return obsCfg
}

// isQuiet reads the root --quiet flag. Commands built without the root
// command have no such flag, which counts as not quiet.
func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")

	return err == nil && quiet
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
