package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
)

// casualtiesColumns is the column-oriented payload embedded in the
// casualties page. Column layout keeps the embedded JSON compact and makes
// the client-side filter loop a plain index scan.
type casualtiesColumns struct {
	Year       []int     `json:"year"`
	Target     []string  `json:"target"`
	Killed     []float64 `json:"killed"`
	Wounded    []float64 `json:"wounded"`
	Casualties []float64 `json:"casualties"`
	Size       []float64 `json:"size"`
	Color      []string  `json:"color"`
}

type legendEntry struct {
	Name  string
	Color string
}

type casualtiesData struct {
	Title       string
	Region      string
	GeneratedAt string
	MinYear     int
	MaxYear     int
	Count       int
	Killed      int
	Wounded     int
	Sampled     bool
	Legend      []legendEntry
	Payload     template.JS
}

var casualtiesTemplate = template.Must(template.New("casualties").Parse(casualtiesHTML))

// RenderCasualties writes the casualties-by-target-type scatter page. The
// checkbox list and legend carry exactly the distinct target types of the
// dataset, in sorted order.
func RenderCasualties(w io.Writer, ds domain.Dataset, opts Options) error {
	summary := aggregate.Summarize(ds.Incidents)

	cols := casualtiesColumns{
		Year:       make([]int, len(ds.Incidents)),
		Target:     make([]string, len(ds.Incidents)),
		Killed:     make([]float64, len(ds.Incidents)),
		Wounded:    make([]float64, len(ds.Incidents)),
		Casualties: make([]float64, len(ds.Incidents)),
		Size:       make([]float64, len(ds.Incidents)),
		Color:      make([]string, len(ds.Incidents)),
	}
	for i := range ds.Incidents {
		inc := &ds.Incidents[i]
		cols.Year[i] = inc.Year
		cols.Target[i] = inc.TargetType
		cols.Killed[i] = inc.Killed
		cols.Wounded[i] = inc.Wounded
		cols.Casualties[i] = inc.Casualties
		cols.Size[i] = inc.Size
		cols.Color[i] = inc.Color
	}

	payload, err := json.Marshal(cols)
	if err != nil {
		return fmt.Errorf("marshal casualties payload: %w", err)
	}

	legend := make([]legendEntry, 0, len(summary.TargetTypes))
	for _, tt := range summary.TargetTypes {
		legend = append(legend, legendEntry{Name: tt, Color: ds.Colors[tt]})
	}

	data := casualtiesData{
		Title:       fmt.Sprintf("Terrorism Casualties by Target Type - %s", opts.Region),
		Region:      opts.Region,
		GeneratedAt: opts.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		MinYear:     summary.MinYear,
		MaxYear:     summary.MaxYear,
		Count:       summary.Count,
		Killed:      int(summary.Killed),
		Wounded:     int(summary.Wounded),
		Sampled:     ds.Sampled,
		Legend:      legend,
		Payload:     template.JS(payload), //nolint:gosec // marshaled by us from clean data
	}

	if err := casualtiesTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render casualties chart: %w", err)
	}
	return nil
}
