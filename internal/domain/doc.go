// Package domain models Global Terrorism Database (GTD) incident records.
//
// # Data Source
//
// Incident records come from regional extracts of the GTD, distributed as
// latin-1 encoded CSV files. Only five columns matter to this tool:
//
//	iyear            event year, an integer. Some extracts carry it as a
//	                 float-formatted string ("2014.0"), which is accepted.
//	attacktype1_txt  attack type label, e.g. "Bombing/Explosion".
//	targtype1_txt    target type label, e.g. "Private Citizens & Property".
//	nkill            number killed. May be empty, "Unknown", or non-numeric.
//	nwound           number wounded. Same caveats as nkill.
//
// # Cleaning Rules
//
// Casualty counts are coerced, never fatal: empty strings, "UNK"/"Unknown"
// sentinels, and unparseable values all become 0, and negative values clamp
// to 0. A row survives cleaning as long as it can be placed on both charts,
// which requires a valid year after the configured floor (GTD coverage
// starts in 1970; anything at or before 1900 is a data error) and non-empty
// attack and target type labels. Rows failing those checks are rejected and
// counted, not silently dropped.
//
// The casualties total is always killed + wounded for a retained row.
//
// # Display Encodings
//
// [EnrichIncidents] assigns the two per-record visual encodings used by the
// casualties scatter: a circle size scaled linearly from 8px to 30px by the
// record's share of the maximum casualties total, and a stable color per
// target type from a 20-color categorical palette (hue-stepped fallback
// beyond 20 categories). Encodings are assigned before sampling so a sampled
// and an unsampled run color the same target type identically.
//
// # ID Generation
//
// Record IDs are deterministic SHA-256 short hashes of the cleaned fields.
// They only appear in logs, where they let a rejected or suspicious row be
// correlated across runs of the same input file. See [generateID].
package domain
