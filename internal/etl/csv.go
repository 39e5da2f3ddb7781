package etl

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"
)

// ErrMissingColumn marks a source file that lacks a required header column.
// A phase hitting it aborts without inserting anything.
var ErrMissingColumn = errors.New("etl: required column missing")

// table is one parsed CSV source: a header index plus raw string rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable loads a CSV file, decoding as UTF-8 and falling back to
// ISO-8859-1 when the bytes are not valid UTF-8. The historical exports mix
// both encodings.
func readTable(path string) (*table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var reader io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		reader = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Newf("etl: %s has no header row", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

// require returns ErrMissingColumn naming the first absent column.
func (t *table) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return errors.Wrapf(ErrMissingColumn, "column %q", name)
		}
	}
	return nil
}

func (t *table) hasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// field returns the trimmed cell value for the named column, or "" when the
// column is absent or the row is short.
func (t *table) field(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
