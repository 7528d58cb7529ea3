package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/incident-viz/internal/config"
	"github.com/couchcryptid/incident-viz/internal/dataset"
	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
	"github.com/couchcryptid/incident-viz/internal/pipeline"
	"github.com/couchcryptid/incident-viz/internal/report"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Clean the dataset and render all chart artifacts",
		Long: `Render reads the incident CSV, cleans it, and writes every artifact
into the output directory:

  attack_types.html       interactive attack-types-over-time chart
  casualties.html         interactive casualties scatter with filters
  attack_trend.png        static incidents-per-year snapshot
  casualties_scatter.png  static killed-vs-wounded snapshot
  summary.md              run summary with per-category breakdowns

Examples:
  # Render with defaults (region_05_clean.csv into ./out)
  incidentviz render

  # Render a different extract into a custom directory
  incidentviz render -i gtd_extract.csv -o reports --region "Region 05"

  # Disable sampling to embed every record
  incidentviz render --sample-limit 0`,
		Args: cobra.NoArgs,
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the dataset CSV")
	cmd.Flags().StringP("out-dir", "o", "", "Output directory for rendered artifacts")
	cmd.Flags().StringP("region", "r", "", "Region label shown in chart titles")
	cmd.Flags().Int("sample-limit", -1, "Maximum records embedded in the HTML output (0 disables sampling)")
	cmd.Flags().Int64("sample-seed", -1, "Sampling RNG seed")
	cmd.Flags().Int("min-year", -1, "Exclusive floor on accepted years")
	cmd.Flags().Int("batch-size", -1, "CSV read batch size")
	cmd.Flags().String("metrics-textfile", "", "Write run metrics in Prometheus exposition format to this path")

	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRenderFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format).
		With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runRender(ctx, cfg, logger, metrics)
}

// loadConfig builds the configuration from the optional config file plus the
// persistent logging flags. Command-specific overrides come after.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}

// applyRenderFlags overrides config values with explicitly set render flags.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if flags.Changed("out-dir") {
		cfg.OutDir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("region") {
		cfg.Region, _ = flags.GetString("region")
	}
	if flags.Changed("sample-limit") {
		cfg.SampleLimit, _ = flags.GetInt("sample-limit")
	}
	if flags.Changed("sample-seed") {
		cfg.SampleSeed, _ = flags.GetInt64("sample-seed")
	}
	if flags.Changed("min-year") {
		cfg.MinYear, _ = flags.GetInt("min-year")
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
	if flags.Changed("metrics-textfile") {
		cfg.MetricsTextfile, _ = flags.GetString("metrics-textfile")
	}
	return nil
}

// countingExtractor wraps a BatchExtractor and counts rows handed out, so
// the run can report source and rejected row totals.
type countingExtractor struct {
	inner pipeline.BatchExtractor
	rows  int
}

func (e *countingExtractor) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawIncidentRecord, error) {
	batch, err := e.inner.ExtractBatch(ctx, batchSize)
	e.rows += len(batch)
	return batch, err
}

// runRender executes the full run: clean, enrich, sample, write artifacts.
func runRender(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	start := time.Now()
	logger.Info("render started", "input", cfg.Input, "out_dir", cfg.OutDir, "region", cfg.Region)

	reader, err := dataset.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer reader.Close() //nolint:errcheck // read-only file

	extractor := &countingExtractor{inner: pipeline.NewCSVExtractor(reader)}
	transformer := pipeline.NewTransformer(cfg.MinYear, metrics, logger)
	collector := pipeline.NewCollector()

	p := pipeline.New(extractor, transformer, collector, logger, metrics, cfg.BatchSize)
	if err := p.Run(ctx); err != nil {
		return err
	}

	incidents := collector.Incidents()
	if len(incidents) == 0 {
		return fmt.Errorf("no usable rows in %s", cfg.Input)
	}

	ds := domain.EnrichIncidents(incidents)
	ds.SourceRows = extractor.rows
	ds.Rejected = extractor.rows - len(incidents)

	// Sampling runs after enrichment so circle sizes and colors stay scaled
	// to the full dataset.
	sampled := dataset.Sample(ds.Incidents, cfg.SampleLimit, cfg.SampleSeed)
	if len(sampled) < len(ds.Incidents) {
		ds.Sampled = true
		logger.Info("dataset sampled", "before", len(ds.Incidents), "after", len(sampled), "seed", cfg.SampleSeed)
	}
	ds.Incidents = sampled

	metrics.DatasetSize.Set(float64(len(ds.Incidents)))
	if ds.Sampled {
		metrics.Sampled.Set(1)
	}

	opts := report.Options{Region: cfg.Region, GeneratedAt: ds.ProcessedAt}
	writer := report.NewWriter(cfg.OutDir, logger, metrics)
	if err := writer.WriteAll(ctx, ds, opts); err != nil {
		return err
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics textfile write failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	logger.Info("render complete",
		"records", len(ds.Incidents),
		"rejected", ds.Rejected,
		"sampled", ds.Sampled,
		"duration", time.Since(start),
	)
	return nil
}
