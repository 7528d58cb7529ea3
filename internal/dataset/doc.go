// Package dataset reads GTD regional extract CSVs and applies the size cap.
//
// The reader is deliberately forgiving about everything except the header:
// the five required columns must be present (case-insensitively) or the load
// fails up front with an error naming every missing column. Past the header,
// ragged rows are tolerated, field values are trimmed, and the latin-1
// encoding of the source files is decoded rather than rejected.
//
// Sampling keeps oversized extracts renderable in a browser: above the
// configured limit the dataset is cut to exactly that many records, chosen
// uniformly with a fixed seed so repeated runs produce identical charts.
package dataset
