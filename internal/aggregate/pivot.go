// Package aggregate computes the groupings behind both charts: the
// year-by-attack-type pivot for the area chart, summary statistics for the
// stats bar, and the filter function the casualties chart's client-side
// callback mirrors.
package aggregate

import (
	"sort"

	"github.com/couchcryptid/incident-viz/internal/domain"
)

// Pivot is incident counts grouped by (year, attack type), zero-filled over
// the full year range so every series has a value for every year.
type Pivot struct {
	Years       []int    // sorted ascending
	AttackTypes []string // sorted ascending
	// Counts[i][j] is the number of incidents in Years[i] of AttackTypes[j].
	Counts [][]int
}

// PivotByYear builds the attack-type pivot from cleaned incidents.
func PivotByYear(incidents []domain.Incident) Pivot {
	if len(incidents) == 0 {
		return Pivot{}
	}

	counts := map[int]map[string]int{}
	minYear, maxYear := incidents[0].Year, incidents[0].Year
	for i := range incidents {
		inc := &incidents[i]
		if inc.Year < minYear {
			minYear = inc.Year
		}
		if inc.Year > maxYear {
			maxYear = inc.Year
		}
		byType := counts[inc.Year]
		if byType == nil {
			byType = map[string]int{}
			counts[inc.Year] = byType
		}
		byType[inc.AttackType]++
	}

	attackTypes := domain.DistinctAttackTypes(incidents)

	// Zero-fill the whole span, including years with no incidents, so the
	// area chart has no gaps on the x axis.
	years := make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		years = append(years, y)
	}

	grid := make([][]int, len(years))
	for i, y := range years {
		row := make([]int, len(attackTypes))
		for j, at := range attackTypes {
			row[j] = counts[y][at]
		}
		grid[i] = row
	}

	return Pivot{Years: years, AttackTypes: attackTypes, Counts: grid}
}

// TotalsByYear sums each year's row across all attack types.
func (p Pivot) TotalsByYear() []int {
	totals := make([]int, len(p.Years))
	for i, row := range p.Counts {
		for _, n := range row {
			totals[i] += n
		}
	}
	return totals
}

// Series returns the count column for one attack type, ordered by year.
// The second return is false when the attack type is not in the pivot.
func (p Pivot) Series(attackType string) ([]int, bool) {
	j := sort.SearchStrings(p.AttackTypes, attackType)
	if j >= len(p.AttackTypes) || p.AttackTypes[j] != attackType {
		return nil, false
	}
	series := make([]int, len(p.Years))
	for i := range p.Counts {
		series[i] = p.Counts[i][j]
	}
	return series, true
}
