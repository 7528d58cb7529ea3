package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/couchcryptid/incident-viz/internal/domain"
)

// Column names required in the CSV header, matched case-insensitively.
const (
	colYear       = "iyear"
	colAttackType = "attacktype1_txt"
	colTargetType = "targtype1_txt"
	colKilled     = "nkill"
	colWounded    = "nwound"
)

var requiredColumns = []string{colYear, colAttackType, colTargetType, colKilled, colWounded}

// Reader streams raw incident records from a CSV source.
type Reader struct {
	csv    *csv.Reader
	cols   map[string]int
	line   int
	closer io.Closer
}

// Open opens a GTD extract CSV file and validates its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close() //nolint:errcheck // open failed, original error wins
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader wraps an io.Reader of latin-1 encoded CSV data and validates the
// header. It fails with an error naming every missing required column.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return &Reader{csv: cr, cols: cols, line: 1}, nil
}

// ReadBatch reads up to batchSize raw records. It returns an empty slice
// once the source is drained.
func (r *Reader) ReadBatch(batchSize int) ([]domain.RawIncidentRecord, error) {
	batch := make([]domain.RawIncidentRecord, 0, batchSize)
	for len(batch) < batchSize {
		row, err := r.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		r.line++
		batch = append(batch, domain.RawIncidentRecord{
			Year:       r.get(row, colYear),
			AttackType: r.get(row, colAttackType),
			TargetType: r.get(row, colTargetType),
			Killed:     r.get(row, colKilled),
			Wounded:    r.get(row, colWounded),
			Line:       r.line,
		})
	}
	return batch, nil
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// get fetches a column value from a possibly ragged row.
func (r *Reader) get(row []string, col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
