package report_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
	"github.com/couchcryptid/incident-viz/internal/observability"
	"github.com/couchcryptid/incident-viz/internal/report"
)

func testDataset(t *testing.T) domain.Dataset {
	t.Helper()

	incidents := []domain.Incident{
		{Year: 2010, AttackType: "Bombing/Explosion", TargetType: "Private Citizens & Property", Killed: 3, Wounded: 10},
		{Year: 2010, AttackType: "Armed Assault", TargetType: "Police", Killed: 1, Wounded: 0},
		{Year: 2011, AttackType: "Bombing/Explosion", TargetType: "Military", Killed: 12, Wounded: 40},
		{Year: 2012, AttackType: "Assassination", TargetType: "Police", Killed: 1, Wounded: 1},
	}
	for i := range incidents {
		incidents[i].Casualties = incidents[i].Killed + incidents[i].Wounded
	}
	return domain.EnrichIncidents(incidents)
}

func testOptions() report.Options {
	return report.Options{
		Region:      "Region 05",
		GeneratedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderAttackTypes(t *testing.T) {
	ds := testDataset(t)
	pivot := aggregate.PivotByYear(ds.Incidents)

	var buf bytes.Buffer
	require.NoError(t, report.RenderAttackTypes(&buf, pivot, testOptions()))
	html := buf.String()

	assert.Contains(t, html, "Attack Types Over Time - Region 05")

	// the legend carries exactly the distinct attack types
	for _, at := range pivot.AttackTypes {
		assert.Contains(t, html, at)
	}

	// embedded payload and the three display modes
	assert.Contains(t, html, `"years":[2010,2011,2012]`)
	assert.Contains(t, html, "Stacked")
	assert.Contains(t, html, "Grouped")
	assert.Contains(t, html, "100% Stacked")
}

func TestRenderCasualties(t *testing.T) {
	ds := testDataset(t)

	var buf bytes.Buffer
	require.NoError(t, report.RenderCasualties(&buf, ds, testOptions()))
	html := buf.String()

	assert.Contains(t, html, "Terrorism Casualties by Target Type - Region 05")

	// one checkbox and one legend entry per distinct target type
	for _, tt := range domain.DistinctTargetTypes(ds.Incidents) {
		assert.Contains(t, html, tt)
	}

	assert.Contains(t, html, `"killed":[3,1,12,1]`)
	assert.Contains(t, html, "Reset Filters")
	assert.Contains(t, html, `min="2010"`)
	assert.Contains(t, html, `max="2012"`)
	assert.NotContains(t, html, "dataset sampled")
}

func TestRenderCasualtiesSampledNote(t *testing.T) {
	ds := testDataset(t)
	ds.Sampled = true

	var buf bytes.Buffer
	require.NoError(t, report.RenderCasualties(&buf, ds, testOptions()))
	assert.Contains(t, buf.String(), "dataset sampled")
}

func TestRenderedPagesAreSelfContained(t *testing.T) {
	ds := testDataset(t)
	pivot := aggregate.PivotByYear(ds.Incidents)

	var attack, casualties bytes.Buffer
	require.NoError(t, report.RenderAttackTypes(&attack, pivot, testOptions()))
	require.NoError(t, report.RenderCasualties(&casualties, ds, testOptions()))

	for name, html := range map[string]string{
		"attack_types": attack.String(),
		"casualties":   casualties.String(),
	} {
		assert.NotContains(t, html, "http://", "page %s must not fetch external resources", name)
		assert.NotContains(t, html, "https://cdn", "page %s must not fetch external resources", name)
		assert.NotContains(t, html, "<link rel=\"stylesheet\" href=", "page %s must inline its styles", name)
	}
}

func TestRenderStaticPNGs(t *testing.T) {
	ds := testDataset(t)
	pivot := aggregate.PivotByYear(ds.Incidents)
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	var trend bytes.Buffer
	require.NoError(t, report.RenderTrendPNG(&trend, pivot, testOptions()))
	assert.True(t, bytes.HasPrefix(trend.Bytes(), pngMagic))

	var scatter bytes.Buffer
	require.NoError(t, report.RenderScatterPNG(&scatter, ds.Incidents, testOptions()))
	assert.True(t, bytes.HasPrefix(scatter.Bytes(), pngMagic))
}

func TestRenderStaticPNGsEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, report.RenderTrendPNG(&buf, aggregate.Pivot{}, testOptions()))
	assert.Error(t, report.RenderScatterPNG(&buf, nil, testOptions()))
}

func TestRenderSummaryMarkdown(t *testing.T) {
	ds := testDataset(t)
	ds.SourceRows = 10
	ds.Rejected = 6
	pivot := aggregate.PivotByYear(ds.Incidents)

	var buf bytes.Buffer
	require.NoError(t, report.RenderSummaryMarkdown(&buf, ds, pivot, testOptions()))
	md := buf.String()

	assert.Contains(t, md, "# Incident Dataset Summary - Region 05")
	assert.Contains(t, md, "## Incidents by Attack Type")
	assert.Contains(t, md, "## Casualties by Target Type")
	assert.Contains(t, md, "2010 - 2012")
	assert.Contains(t, md, "Source rows")
	assert.Contains(t, md, "Rows rejected")
	assert.Contains(t, md, "Bombing/Explosion")
	assert.Contains(t, md, "attack_types.html")
	assert.Contains(t, md, "casualties.html")
}

func TestWriterWriteAll(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := report.NewWriter(outDir, logger, observability.NewMetricsForTesting())

	require.NoError(t, w.WriteAll(context.Background(), testDataset(t), testOptions()))

	for _, name := range []string{
		report.AttackTypesFile,
		report.CasualtiesFile,
		report.TrendFile,
		report.ScatterFile,
		report.SummaryFile,
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "artifact %s", name)
		assert.Positive(t, info.Size(), "artifact %s", name)
	}
}

func TestWriterWriteAllEmptyDataset(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := report.NewWriter(t.TempDir(), logger, observability.NewMetricsForTesting())

	err := w.WriteAll(context.Background(), domain.Dataset{}, testOptions())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "empty") || strings.Contains(err.Error(), "no incidents"))
}
