package etl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestReadTableLatin1Fallback(t *testing.T) {
	t.Parallel()

	// "Zaïre" with the ï encoded as ISO-8859-1 (0xEF), not UTF-8.
	raw := []byte("current,former\nDemocratic Republic of the Congo,Za\xefre\n")
	path := filepath.Join(t.TempDir(), "former_names.csv")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tbl, err := readTable(path)
	if err != nil {
		t.Fatalf("readTable: %v", err)
	}
	if len(tbl.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.rows))
	}
	if got := tbl.field(tbl.rows[0], "former"); got != "Zaïre" {
		t.Fatalf("former = %q, want Zaïre", got)
	}
}

func TestTableRequire(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "countries.csv")
	if err := os.WriteFile(path, []byte("Display_Name,Region\nIran,Asia\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tbl, err := readTable(path)
	if err != nil {
		t.Fatalf("readTable: %v", err)
	}
	if err := tbl.require("Display_Name", "Region"); err != nil {
		t.Fatalf("require existing columns: %v", err)
	}
	if err := tbl.require("Population"); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("require missing column = %v, want ErrMissingColumn", err)
	}
}
