// Package report renders the run artifacts: two self-contained interactive
// HTML charts, static PNG snapshots, and a Markdown run summary.
//
// The HTML charts carry no external references at all: inline CSS, inline
// vanilla JS, SVG drawn client-side from a JSON payload embedded in the
// page. Opening the file from disk, air-gapped, is the supported deployment.
//
// The attack-types chart draws incident counts per attack type over years
// as an area chart with three client-side modes: stacked, grouped (plain
// overlapping lines), and 100% stacked (percent-normalized). The casualties
// chart draws killed vs wounded per incident, colored by target type, with
// a year range slider, target-type checkboxes, and a reset button; its
// applyFilters callback is a line-for-line mirror of [aggregate.Filter].
package report
