package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: relation matches does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullInt64RoundTrip(t *testing.T) {
	t.Run("nil pointer maps to invalid", func(t *testing.T) {
		if got := ptrToNullInt64(nil); got.Valid {
			t.Fatalf("expected invalid NullInt64 for nil pointer")
		}
		if got := nullInt64ToPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil pointer for invalid NullInt64")
		}
	})

	t.Run("value survives the round trip", func(t *testing.T) {
		value := int64(212559417)
		got := nullInt64ToPtr(ptrToNullInt64(&value))
		if got == nil || *got != value {
			t.Fatalf("expected %d back, got %v", value, got)
		}
	})
}

func TestIntPtrToNullInt64(t *testing.T) {
	minute := 79
	got := intPtrToNullInt64(&minute)
	if !got.Valid || got.Int64 != 79 {
		t.Fatalf("unexpected NullInt64: %+v", got)
	}
	if back := nullInt64ToIntPtr(got); back == nil || *back != 79 {
		t.Fatalf("expected 79 back, got %v", back)
	}
}
