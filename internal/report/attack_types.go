package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
)

// Options carries the presentation settings shared by all renderers.
type Options struct {
	// Region is the human-readable dataset label shown in titles.
	Region string
	// GeneratedAt is stamped into the page footer.
	GeneratedAt time.Time
}

// attackSeries is one attack type's count-per-year column, with its
// assigned color.
type attackSeries struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Values []int  `json:"values"`
}

// attackPayload is the JSON embedded in the attack-types page for the
// client-side renderer.
type attackPayload struct {
	Years  []int          `json:"years"`
	Series []attackSeries `json:"series"`
}

type attackTypesData struct {
	Title       string
	Region      string
	GeneratedAt string
	Series      []attackSeries
	Payload     template.JS
}

var attackTypesTemplate = template.Must(template.New("attack_types").Parse(attackTypesHTML))

// RenderAttackTypes writes the attack-types-over-time chart page.
// The legend lists exactly the attack types present in the pivot.
func RenderAttackTypes(w io.Writer, pivot aggregate.Pivot, opts Options) error {
	colors := domain.ColorMapping(pivot.AttackTypes)

	series := make([]attackSeries, 0, len(pivot.AttackTypes))
	for _, at := range pivot.AttackTypes {
		values, _ := pivot.Series(at)
		series = append(series, attackSeries{Name: at, Color: colors[at], Values: values})
	}

	payload, err := json.Marshal(attackPayload{Years: pivot.Years, Series: series})
	if err != nil {
		return fmt.Errorf("marshal attack payload: %w", err)
	}

	data := attackTypesData{
		Title:       fmt.Sprintf("Attack Types Over Time - %s", opts.Region),
		Region:      opts.Region,
		GeneratedAt: opts.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		Series:      series,
		Payload:     template.JS(payload), //nolint:gosec // marshaled by us from clean data
	}

	if err := attackTypesTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render attack types chart: %w", err)
	}
	return nil
}
