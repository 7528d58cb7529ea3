package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
	"github.com/couchcryptid/incident-viz/internal/pipeline"
)

// --- mocks ---

type mockExtractor struct {
	records []domain.RawIncidentRecord
	offset  int
	err     error
}

func (m *mockExtractor) ExtractBatch(_ context.Context, batchSize int) ([]domain.RawIncidentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.offset >= len(m.records) {
		return nil, nil
	}
	end := min(m.offset+batchSize, len(m.records))
	batch := m.records[m.offset:end]
	m.offset = end
	return batch, nil
}

type failingLoader struct{ err error }

func (l *failingLoader) LoadBatch(context.Context, []domain.Incident) error { return l.err }

func makeRawRecords(n int) []domain.RawIncidentRecord {
	records := make([]domain.RawIncidentRecord, n)
	for i := range records {
		records[i] = domain.RawIncidentRecord{
			Year:       strconv.Itoa(1971 + i%50),
			AttackType: "Bombing/Explosion",
			TargetType: "Police",
			Killed:     "1",
			Wounded:    "2",
			Line:       i + 2,
		}
	}
	return records
}

func newTestPipeline(ext pipeline.BatchExtractor, ldr pipeline.Loader, batchSize int) *pipeline.Pipeline {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(domain.DefaultMinYear, metrics, slog.Default())
	return pipeline.New(ext, tfm, ldr, slog.Default(), metrics, batchSize)
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	ext := &mockExtractor{records: makeRawRecords(25)}
	col := pipeline.NewCollector()

	p := newTestPipeline(ext, col, 10)
	require.NoError(t, p.Run(context.Background()))

	incidents := col.Incidents()
	require.Len(t, incidents, 25)
	assert.Equal(t, 3.0, incidents[0].Casualties)
}

func TestPipeline_Run_SkipsRejectedRows(t *testing.T) {
	records := makeRawRecords(5)
	records[1].Year = ""          // missing year
	records[3].TargetType = "   " // missing category

	ext := &mockExtractor{records: records}
	col := pipeline.NewCollector()

	p := newTestPipeline(ext, col, 2)
	require.NoError(t, p.Run(context.Background()))

	assert.Len(t, col.Incidents(), 3)
}

func TestPipeline_Run_CoercedRowsRetained(t *testing.T) {
	records := makeRawRecords(2)
	records[0].Killed = "Unknown"
	records[0].Wounded = "xx"

	ext := &mockExtractor{records: records}
	col := pipeline.NewCollector()

	p := newTestPipeline(ext, col, 10)
	require.NoError(t, p.Run(context.Background()))

	incidents := col.Incidents()
	require.Len(t, incidents, 2)
	assert.Equal(t, 0.0, incidents[0].Casualties)
}

func TestPipeline_Run_ExtractorError(t *testing.T) {
	ext := &mockExtractor{err: errors.New("disk gone")}
	col := pipeline.NewCollector()

	p := newTestPipeline(ext, col, 10)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract batch")
}

func TestPipeline_Run_LoaderError(t *testing.T) {
	ext := &mockExtractor{records: makeRawRecords(3)}
	ldr := &failingLoader{err: errors.New("out of memory")}

	p := newTestPipeline(ext, ldr, 10)
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load batch")
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	ext := &mockExtractor{records: makeRawRecords(100)}
	col := pipeline.NewCollector()

	p := newTestPipeline(ext, col, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, col.Incidents())
}
