package dataset

import (
	"math/rand"
	"sort"

	"github.com/couchcryptid/incident-viz/internal/domain"
)

// DefaultSampleLimit caps the number of points embedded in the HTML output.
// Beyond ~50k points browser-side filtering stops being interactive.
const DefaultSampleLimit = 50000

// DefaultSampleSeed makes repeated runs over the same input byte-identical.
const DefaultSampleSeed = 42

// Sample cuts incidents down to exactly limit records when the input exceeds
// it, chosen uniformly without replacement using the given seed. Original
// order is preserved. Inputs at or under the limit pass through untouched.
func Sample(incidents []domain.Incident, limit int, seed int64) []domain.Incident {
	if limit <= 0 || len(incidents) <= limit {
		return incidents
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // sampling, not crypto
	picked := rng.Perm(len(incidents))[:limit]
	sort.Ints(picked)

	out := make([]domain.Incident, limit)
	for i, idx := range picked {
		out[i] = incidents[idx]
	}
	return out
}
