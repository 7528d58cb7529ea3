package report

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
)

// RenderTrendPNG writes a static PNG of total incidents per year, a
// thumbnail of the attack-types chart for the Markdown summary.
func RenderTrendPNG(w io.Writer, pivot aggregate.Pivot, opts Options) error {
	if len(pivot.Years) == 0 {
		return fmt.Errorf("render trend: empty pivot")
	}

	totals := pivot.TotalsByYear()
	xs := make([]float64, len(pivot.Years))
	ys := make([]float64, len(pivot.Years))
	for i, y := range pivot.Years {
		xs[i] = float64(y)
		ys[i] = float64(totals[i])
	}
	// go-chart needs at least two x values per series.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Incidents per Year - %s", opts.Region),
		Width:  900,
		Height: 400,
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: "Incidents"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Incidents",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render trend png: %w", err)
	}
	return nil
}

// RenderScatterPNG writes a static PNG of killed vs wounded, the
// non-interactive counterpart to the casualties chart.
func RenderScatterPNG(w io.Writer, incidents []domain.Incident, opts Options) error {
	if len(incidents) == 0 {
		return fmt.Errorf("render scatter: no incidents")
	}

	xs := make([]float64, len(incidents))
	ys := make([]float64, len(incidents))
	for i := range incidents {
		xs[i] = incidents[i].Killed
		ys[i] = incidents[i].Wounded
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Casualties - %s", opts.Region),
		Width:  900,
		Height: 500,
		XAxis:  chart.XAxis{Name: "Number Killed"},
		YAxis:  chart.YAxis{Name: "Number Wounded"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Incidents",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    drawing.ColorFromHex("1f77b4"),
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render scatter png: %w", err)
	}
	return nil
}
