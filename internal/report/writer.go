package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
)

// Artifact file names, referenced by the Markdown summary.
const (
	AttackTypesFile = "attack_types.html"
	CasualtiesFile  = "casualties.html"
	TrendFile       = "attack_trend.png"
	ScatterFile     = "casualties_scatter.png"
	SummaryFile     = "summary.md"
)

// Writer renders all artifacts for one run into an output directory.
type Writer struct {
	outDir  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewWriter creates a Writer targeting outDir.
func NewWriter(outDir string, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	return &Writer{outDir: outDir, logger: logger, metrics: metrics}
}

// WriteAll renders every artifact. The two interactive HTML pages render
// concurrently; the static snapshots and summary follow.
func (w *Writer) WriteAll(ctx context.Context, ds domain.Dataset, opts Options) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pivot := aggregate.PivotByYear(ds.Incidents)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.writeArtifact(AttackTypesFile, func(f *os.File) error {
			return RenderAttackTypes(f, pivot, opts)
		})
	})
	g.Go(func() error {
		return w.writeArtifact(CasualtiesFile, func(f *os.File) error {
			return RenderCasualties(f, ds, opts)
		})
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.writeArtifact(TrendFile, func(f *os.File) error {
		return RenderTrendPNG(f, pivot, opts)
	}); err != nil {
		return err
	}
	if err := w.writeArtifact(ScatterFile, func(f *os.File) error {
		return RenderScatterPNG(f, ds.Incidents, opts)
	}); err != nil {
		return err
	}
	return w.writeArtifact(SummaryFile, func(f *os.File) error {
		return RenderSummaryMarkdown(f, ds, pivot, opts)
	})
}

// writeArtifact renders one artifact to a file, timing it.
func (w *Writer) writeArtifact(name string, render func(*os.File) error) error {
	start := time.Now()
	path := filepath.Join(w.outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	if err := render(f); err != nil {
		f.Close() //nolint:errcheck // render failed, original error wins
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	w.metrics.RenderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	w.logger.Info("artifact written", "path", path, "duration", time.Since(start))
	return nil
}
