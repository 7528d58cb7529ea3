package aggregate

import "github.com/couchcryptid/incident-viz/internal/domain"

// Summary holds the aggregate statistics shown in the stats bar and the
// Markdown run report.
type Summary struct {
	Count       int
	Killed      float64
	Wounded     float64
	Casualties  float64
	MinYear     int
	MaxYear     int
	TargetTypes []string
	AttackTypes []string
}

// Summarize computes the summary of a cleaned incident slice.
func Summarize(incidents []domain.Incident) Summary {
	s := Summary{Count: len(incidents)}
	if len(incidents) == 0 {
		return s
	}

	s.MinYear, s.MaxYear = incidents[0].Year, incidents[0].Year
	for i := range incidents {
		inc := &incidents[i]
		s.Killed += inc.Killed
		s.Wounded += inc.Wounded
		s.Casualties += inc.Casualties
		if inc.Year < s.MinYear {
			s.MinYear = inc.Year
		}
		if inc.Year > s.MaxYear {
			s.MaxYear = inc.Year
		}
	}
	s.TargetTypes = domain.DistinctTargetTypes(incidents)
	s.AttackTypes = domain.DistinctAttackTypes(incidents)
	return s
}
