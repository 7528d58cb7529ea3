package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/incident-viz/internal/domain"
)

func testIncidents() []domain.Incident {
	return []domain.Incident{
		{Year: 2010, AttackType: "Bombing/Explosion", TargetType: "Police", Killed: 3, Wounded: 7, Casualties: 10},
		{Year: 2010, AttackType: "Armed Assault", TargetType: "Military", Killed: 1, Wounded: 0, Casualties: 1},
		{Year: 2012, AttackType: "Bombing/Explosion", TargetType: "Police", Killed: 0, Wounded: 4, Casualties: 4},
		{Year: 2012, AttackType: "Bombing/Explosion", TargetType: "Private Citizens & Property", Killed: 12, Wounded: 30, Casualties: 42},
	}
}

func TestPivotByYear(t *testing.T) {
	t.Run("pivot grid", func(t *testing.T) {
		p := PivotByYear(testIncidents())

		assert.Equal(t, []int{2010, 2011, 2012}, p.Years)
		assert.Equal(t, []string{"Armed Assault", "Bombing/Explosion"}, p.AttackTypes)
		require.Len(t, p.Counts, 3)
		assert.Equal(t, []int{1, 1}, p.Counts[0]) // 2010
		assert.Equal(t, []int{0, 0}, p.Counts[1]) // 2011, zero-filled gap
		assert.Equal(t, []int{0, 3}, p.Counts[2]) // 2012
	})

	t.Run("totals by year", func(t *testing.T) {
		p := PivotByYear(testIncidents())
		assert.Equal(t, []int{2, 0, 3}, p.TotalsByYear())
	})

	t.Run("series lookup", func(t *testing.T) {
		p := PivotByYear(testIncidents())

		series, ok := p.Series("Bombing/Explosion")
		require.True(t, ok)
		assert.Equal(t, []int{1, 0, 3}, series)

		_, ok = p.Series("Hijacking")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		p := PivotByYear(nil)
		assert.Empty(t, p.Years)
		assert.Empty(t, p.AttackTypes)
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(testIncidents())

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 16.0, s.Killed)
	assert.Equal(t, 41.0, s.Wounded)
	assert.Equal(t, 57.0, s.Casualties)
	assert.Equal(t, 2010, s.MinYear)
	assert.Equal(t, 2012, s.MaxYear)
	assert.Equal(t, []string{"Military", "Police", "Private Citizens & Property"}, s.TargetTypes)
	assert.Equal(t, []string{"Armed Assault", "Bombing/Explosion"}, s.AttackTypes)

	assert.Zero(t, Summarize(nil).Count)
}

func TestFilter(t *testing.T) {
	incidents := testIncidents()

	t.Run("nil selection means all target types", func(t *testing.T) {
		filtered, summary, _ := Filter(incidents, YearRange{Min: 2010, Max: 2012}, nil)

		assert.Len(t, filtered, 4)
		assert.Equal(t, 57.0, summary.Casualties)
	})

	t.Run("year range bounds inclusive", func(t *testing.T) {
		filtered, summary, _ := Filter(incidents, YearRange{Min: 2012, Max: 2012}, nil)

		assert.Len(t, filtered, 2)
		assert.Equal(t, 2012, summary.MinYear)
		assert.Equal(t, 2012, summary.MaxYear)
	})

	t.Run("target type selection", func(t *testing.T) {
		filtered, summary, _ := Filter(incidents, YearRange{Min: 2010, Max: 2012}, []string{"Police"})

		assert.Len(t, filtered, 2)
		assert.Equal(t, 3.0, summary.Killed)
		assert.Equal(t, 11.0, summary.Wounded)
		assert.Equal(t, []string{"Police"}, summary.TargetTypes)
	})

	t.Run("empty selection selects nothing", func(t *testing.T) {
		filtered, summary, ranges := Filter(incidents, YearRange{Min: 2010, Max: 2012}, []string{})

		assert.Empty(t, filtered)
		assert.Zero(t, summary.Count)
		assert.Equal(t, AxisRanges{}, ranges)
	})

	t.Run("axis ranges padded by one", func(t *testing.T) {
		_, _, ranges := Filter(incidents, YearRange{Min: 2010, Max: 2010}, nil)

		assert.Equal(t, 0.0, ranges.XMin) // min killed 1, minus 1
		assert.Equal(t, 4.0, ranges.XMax) // max killed 3, plus 1
		assert.Equal(t, -1.0, ranges.YMin)
		assert.Equal(t, 8.0, ranges.YMax)
	})

	t.Run("summary equals sum of parts", func(t *testing.T) {
		filtered, summary, _ := Filter(incidents, YearRange{Min: 2010, Max: 2012}, []string{"Police", "Military"})

		var killed, wounded float64
		for _, inc := range filtered {
			killed += inc.Killed
			wounded += inc.Wounded
		}
		assert.Equal(t, killed, summary.Killed)
		assert.Equal(t, wounded, summary.Wounded)
	})
}
