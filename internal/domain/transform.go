package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultMinYear is the exclusive lower bound on accepted years. GTD coverage
// starts in 1970; anything at or before 1900 is a data entry error.
const DefaultMinYear = 1900

var (
	// ErrMissingYear marks a row whose year is empty or unparseable.
	ErrMissingYear = errors.New("missing or invalid year")
	// ErrMissingCategory marks a row lacking an attack or target type label.
	ErrMissingCategory = errors.New("missing category label")
)

// ParseRawRecord cleans one raw CSV row into an Incident.
//
// Casualty counts coerce to zero on any parse failure; coerced reports how
// many of the two count fields needed coercion. The row itself is rejected
// (non-nil error) only when the year is missing, unparseable, or at/below
// minYear, or when either category label is empty.
func ParseRawRecord(raw RawIncidentRecord, minYear int) (Incident, int, error) {
	year, err := parseYear(raw.Year)
	if err != nil {
		return Incident{}, 0, fmt.Errorf("line %d: %w", raw.Line, ErrMissingYear)
	}
	if year <= minYear {
		return Incident{}, 0, fmt.Errorf("line %d: year %d at or below floor %d: %w", raw.Line, year, minYear, ErrMissingYear)
	}

	attackType := strings.TrimSpace(raw.AttackType)
	targetType := strings.TrimSpace(raw.TargetType)
	if attackType == "" || targetType == "" {
		return Incident{}, 0, fmt.Errorf("line %d: %w", raw.Line, ErrMissingCategory)
	}

	coerced := 0
	killed, ok := parseCount(raw.Killed)
	if !ok {
		coerced++
	}
	wounded, ok := parseCount(raw.Wounded)
	if !ok {
		coerced++
	}

	inc := Incident{
		Year:       year,
		AttackType: attackType,
		TargetType: targetType,
		Killed:     killed,
		Wounded:    wounded,
		Casualties: killed + wounded,
	}
	inc.ID = generateID(inc)
	return inc, coerced, nil
}

// parseYear parses a year string, accepting float-formatted values such as
// "2014.0" that appear in some GTD extracts.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingYear
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, ErrMissingYear
	}
	return int(f), nil
}

// parseCount parses a casualty count. Empty strings, the "UNK"/"Unknown"
// sentinels, and unparseable values coerce to 0; negatives clamp to 0.
// ok is false when the raw value carried no usable number, true when the
// value parsed cleanly (including an explicit "0").
func parseCount(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "UNK") || strings.EqualFold(s, "Unknown") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if f < 0 {
		return 0, false
	}
	return f, true
}

// generateID produces a deterministic short ID from the cleaned fields.
// Re-cleaning the same row always yields the same ID, so a problem row can
// be traced across runs.
func generateID(inc Incident) string {
	input := fmt.Sprintf("%d|%s|%s|%g|%g", inc.Year, inc.AttackType, inc.TargetType, inc.Killed, inc.Wounded)
	hash := sha256.Sum256([]byte(input))
	return "inc-" + hex.EncodeToString(hash[:8])
}

// EnrichIncidents assigns the display encodings and derived metadata for a
// cleaned slice of incidents: per-target-type colors, the 8-30px circle size
// scale, and the dataset timestamp. The input slice is mutated in place.
func EnrichIncidents(incidents []Incident) Dataset {
	var maxCasualties float64
	for i := range incidents {
		if incidents[i].Casualties > maxCasualties {
			maxCasualties = incidents[i].Casualties
		}
	}

	colors := ColorMapping(DistinctTargetTypes(incidents))
	for i := range incidents {
		incidents[i].Size = circleSize(incidents[i].Casualties, maxCasualties)
		incidents[i].Color = colors[incidents[i].TargetType]
	}

	return Dataset{
		Incidents:     incidents,
		MaxCasualties: maxCasualties,
		Colors:        colors,
		ProcessedAt:   clock.Now(),
	}
}

// circleSize maps a casualties total onto the 8-30px scatter size scale.
// When no record has any casualties, every point gets a fixed 10px.
func circleSize(casualties, maxCasualties float64) float64 {
	if maxCasualties <= 0 {
		return 10
	}
	return 8 + casualties/maxCasualties*22
}

// DistinctTargetTypes returns the sorted set of target type labels.
func DistinctTargetTypes(incidents []Incident) []string {
	seen := map[string]bool{}
	for i := range incidents {
		seen[incidents[i].TargetType] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DistinctAttackTypes returns the sorted set of attack type labels.
func DistinctAttackTypes(incidents []Incident) []string {
	seen := map[string]bool{}
	for i := range incidents {
		seen[incidents[i].AttackType] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
