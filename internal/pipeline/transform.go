package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
)

// IncidentTransformer implements Transformer using the domain cleaning rules.
type IncidentTransformer struct {
	minYear int
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates an IncidentTransformer with the given year floor.
func NewTransformer(minYear int, metrics *observability.Metrics, logger *slog.Logger) *IncidentTransformer {
	return &IncidentTransformer{
		minYear: minYear,
		metrics: metrics,
		logger:  logger,
	}
}

func (t *IncidentTransformer) Transform(_ context.Context, raw domain.RawIncidentRecord) (domain.Incident, error) {
	inc, coerced, err := domain.ParseRawRecord(raw, t.minYear)
	if err != nil {
		return domain.Incident{}, err
	}
	if coerced > 0 {
		t.metrics.ValuesCoerced.Add(float64(coerced))
		t.logger.Debug("casualty values coerced to zero", "id", inc.ID, "line", raw.Line, "coerced", coerced)
	}
	return inc, nil
}

// Collector implements Loader by accumulating incidents in memory.
type Collector struct {
	incidents []domain.Incident
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) LoadBatch(_ context.Context, incidents []domain.Incident) error {
	c.incidents = append(c.incidents, incidents...)
	return nil
}

// Incidents returns everything collected so far.
func (c *Collector) Incidents() []domain.Incident {
	return c.incidents
}
