package pipeline

import (
	"context"

	"github.com/couchcryptid/incident-viz/internal/dataset"
	"github.com/couchcryptid/incident-viz/internal/domain"
)

// CSVExtractor adapts a dataset.Reader to the BatchExtractor interface.
type CSVExtractor struct {
	reader *dataset.Reader
}

// NewCSVExtractor wraps an opened dataset reader.
func NewCSVExtractor(r *dataset.Reader) *CSVExtractor {
	return &CSVExtractor{reader: r}
}

func (e *CSVExtractor) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawIncidentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.reader.ReadBatch(batchSize)
}
