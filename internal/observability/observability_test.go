package observability

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("debug", "text"))
	assert.NotNil(t, NewLogger("info", "json"))
	assert.NotNil(t, NewLogger("", ""))
}

func TestMetricsWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RowsRead.Add(10)
	m.RowsRejected.Add(2)
	m.DatasetSize.Set(8)
	m.RenderDuration.WithLabelValues("summary.md").Observe(0.03)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "incident_viz_rows_read_total 10")
	assert.Contains(t, out, "incident_viz_rows_rejected_total 2")
	assert.Contains(t, out, "incident_viz_dataset_size 8")
	assert.Contains(t, out, `artifact="summary.md"`)
}

func TestMetricsForTestingHasNoRegistry(t *testing.T) {
	m := NewMetricsForTesting()
	m.RowsRead.Inc()
	m.BatchDuration.Observe(0.001)

	// no registry, so the textfile export is a no-op
	require.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}
