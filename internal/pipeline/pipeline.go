// Package pipeline runs the extract-transform-collect loop that turns raw
// CSV rows into a cleaned incident dataset. Per-row cleaning failures are
// skipped and counted, never fatal; only source-level failures (unreadable
// file, malformed CSV) abort the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
)

// BatchExtractor reads up to batchSize raw records from the source.
// An empty batch signals the source is drained.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawIncidentRecord, error)
}

// Transformer cleans a raw record into an incident.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawIncidentRecord) (domain.Incident, error)
}

// Loader receives cleaned incidents.
type Loader interface {
	LoadBatch(ctx context.Context, incidents []domain.Incident) error
}

// Pipeline orchestrates the extract-transform-load loop over a finite source.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l Loader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// Run drains the extractor, cleaning and loading each batch, until the
// source is exhausted or the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline cancelled", "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
		if err != nil {
			return fmt.Errorf("extract batch: %w", err)
		}
		if len(rawBatch) == 0 {
			p.logger.Info("source drained")
			return nil
		}

		p.metrics.RowsRead.Add(float64(len(rawBatch)))

		start := time.Now()
		if err := p.transformAndLoad(ctx, rawBatch); err != nil {
			return err
		}
		p.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}
}

// transformAndLoad cleans each row in the batch and loads the survivors.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawIncidentRecord) error {
	incidents := make([]domain.Incident, 0, len(rawBatch))

	for _, raw := range rawBatch {
		inc, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("row rejected", "error", err, "line", raw.Line)
			p.metrics.RowsRejected.Inc()
			continue
		}
		incidents = append(incidents, inc)
	}

	if len(incidents) == 0 {
		return nil
	}

	if err := p.loader.LoadBatch(ctx, incidents); err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	p.metrics.RowsKept.Add(float64(len(incidents)))
	return nil
}
