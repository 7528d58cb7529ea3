package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/dataset"
	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
	"github.com/couchcryptid/incident-viz/internal/pipeline"
	"github.com/couchcryptid/incident-viz/internal/report"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Clean the dataset and print a summary without rendering charts",
		Long: `Inspect runs the cleaning pipeline and prints the Markdown run summary
to stdout. Nothing is written to disk. Useful for checking how many rows
an extract would contribute before rendering.

Examples:
  incidentviz inspect
  incidentviz inspect -i gtd_extract.csv --min-year 1970`,
		Args: cobra.NoArgs,
		RunE: runInspectCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the dataset CSV")
	cmd.Flags().StringP("region", "r", "", "Region label shown in the summary title")
	cmd.Flags().Int("min-year", -1, "Exclusive floor on accepted years")
	cmd.Flags().Int("batch-size", -1, "CSV read batch size")

	return cmd
}

func runInspectCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if flags.Changed("region") {
		cfg.Region, _ = flags.GetString("region")
	}
	if flags.Changed("min-year") {
		cfg.MinYear, _ = flags.GetInt("min-year")
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize, _ = flags.GetInt("batch-size")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format).
		With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	opts := report.Options{Region: cfg.Region, GeneratedAt: ds.ProcessedAt}
	return report.RenderSummaryMarkdown(cmd.OutOrStdout(), ds, aggregate.PivotByYear(ds.Incidents), opts)
}
