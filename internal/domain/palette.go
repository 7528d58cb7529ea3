package domain

import (
	"fmt"
	"math"
)

// category20 is the standard 20-color categorical palette used when the
// dataset has at most 20 target types.
var category20 = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// ColorMapping assigns a stable hex color to each label. Labels must be
// pre-sorted; stability across runs comes from the sorted order, not from
// the map iteration order of the caller.
//
// Up to 20 labels draw from the categorical palette. Beyond that the
// mapping falls back to evenly stepped hues around the color wheel so every
// category stays distinguishable.
func ColorMapping(labels []string) map[string]string {
	colors := make(map[string]string, len(labels))
	if len(labels) <= len(category20) {
		for i, l := range labels {
			colors[l] = category20[i]
		}
		return colors
	}
	for i, l := range labels {
		hue := float64(i) / float64(len(labels)) * 360
		colors[l] = hslToHex(hue, 0.65, 0.5)
	}
	return colors
}

// hslToHex converts an HSL color (h in degrees, s and l in [0,1]) to a hex
// string. Standard HSL-to-RGB conversion.
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)),
	)
}
