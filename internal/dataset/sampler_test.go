package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/incident-viz/internal/domain"
)

func makeIncidents(n int) []domain.Incident {
	incidents := make([]domain.Incident, n)
	for i := range incidents {
		incidents[i] = domain.Incident{Year: 1971 + i%50, Killed: float64(i)}
	}
	return incidents
}

func TestSample(t *testing.T) {
	t.Run("over limit yields exactly limit rows", func(t *testing.T) {
		out := Sample(makeIncidents(1000), 100, DefaultSampleSeed)
		assert.Len(t, out, 100)
	})

	t.Run("at or under limit passes through", func(t *testing.T) {
		in := makeIncidents(100)
		assert.Len(t, Sample(in, 100, DefaultSampleSeed), 100)
		assert.Len(t, Sample(in, 500, DefaultSampleSeed), 100)
	})

	t.Run("deterministic under fixed seed", func(t *testing.T) {
		in := makeIncidents(1000)
		a := Sample(in, 50, DefaultSampleSeed)
		b := Sample(in, 50, DefaultSampleSeed)
		assert.Equal(t, a, b)
	})

	t.Run("preserves input order", func(t *testing.T) {
		out := Sample(makeIncidents(1000), 200, DefaultSampleSeed)
		require.Len(t, out, 200)
		for i := 1; i < len(out); i++ {
			assert.Less(t, out[i-1].Killed, out[i].Killed)
		}
	})

	t.Run("non-positive limit disables sampling", func(t *testing.T) {
		in := makeIncidents(10)
		assert.Len(t, Sample(in, 0, DefaultSampleSeed), 10)
	})
}
