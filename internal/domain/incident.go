package domain

import "time"

// RawIncidentRecord is one CSV row as read from disk, all fields still
// strings. Line is the 1-based CSV line number for log correlation.
type RawIncidentRecord struct {
	Year       string
	AttackType string
	TargetType string
	Killed     string
	Wounded    string
	Line       int
}

// Incident is the cleaned, chart-ready representation of one event.
type Incident struct {
	ID         string  `json:"id"`
	Year       int     `json:"year"`
	AttackType string  `json:"attack_type"`
	TargetType string  `json:"target_type"`
	Killed     float64 `json:"killed"`
	Wounded    float64 `json:"wounded"`
	Casualties float64 `json:"casualties"`

	// Display encodings, assigned by EnrichIncidents.
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Dataset is the in-memory result of a full load: cleaned incidents plus
// the derived metadata the renderers need.
type Dataset struct {
	Incidents     []Incident
	MaxCasualties float64
	// Colors maps each distinct target type to its assigned hex color.
	Colors map[string]string
	// Sampled is true when the dataset was cut down to the sample limit.
	Sampled     bool
	SourceRows  int // rows read from the CSV, before cleaning
	Rejected    int // rows dropped during cleaning
	ProcessedAt time.Time
}
