package aggregate

import "github.com/couchcryptid/incident-viz/internal/domain"

// YearRange is an inclusive year interval.
type YearRange struct {
	Min int
	Max int
}

// AxisRanges are the scatter axis bounds for a filtered dataset, padded by
// one unit on each side. Zero value means no visible points.
type AxisRanges struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Filter selects the incidents inside the year range whose target type is in
// selected, and returns the filtered slice with its summary and axis ranges.
//
// A nil selected slice means "all target types" (the reset state); an empty
// non-nil slice means none are checked and selects nothing. The embedded
// applyFilters JS in the casualties chart mirrors this function exactly;
// changes here must be reflected there.
func Filter(incidents []domain.Incident, years YearRange, selected []string) ([]domain.Incident, Summary, AxisRanges) {
	var selectedSet map[string]bool
	if selected != nil {
		selectedSet = make(map[string]bool, len(selected))
		for _, s := range selected {
			selectedSet[s] = true
		}
	}

	filtered := make([]domain.Incident, 0, len(incidents))
	for i := range incidents {
		inc := &incidents[i]
		if inc.Year < years.Min || inc.Year > years.Max {
			continue
		}
		if selectedSet != nil && !selectedSet[inc.TargetType] {
			continue
		}
		filtered = append(filtered, *inc)
	}

	return filtered, Summarize(filtered), axisRanges(filtered)
}

// axisRanges computes padded killed/wounded axis bounds from visible points.
func axisRanges(incidents []domain.Incident) AxisRanges {
	if len(incidents) == 0 {
		return AxisRanges{}
	}

	r := AxisRanges{
		XMin: incidents[0].Killed, XMax: incidents[0].Killed,
		YMin: incidents[0].Wounded, YMax: incidents[0].Wounded,
	}
	for i := range incidents {
		inc := &incidents[i]
		if inc.Killed < r.XMin {
			r.XMin = inc.Killed
		}
		if inc.Killed > r.XMax {
			r.XMax = inc.Killed
		}
		if inc.Wounded < r.YMin {
			r.YMin = inc.Wounded
		}
		if inc.Wounded > r.YMax {
			r.YMax = inc.Wounded
		}
	}
	r.XMin--
	r.XMax++
	r.YMin--
	r.YMax++
	return r
}
