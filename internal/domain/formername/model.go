package formername

import (
	"fmt"
	"time"
)

// FormerName records a historical name a country competed under, mapped to
// the canonical name it resolves to today.
type FormerName struct {
	ID          int64
	CountryID   int64
	CurrentName string
	Former      string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (f FormerName) Validate() error {
	if f.Former == "" {
		return fmt.Errorf("former name is required")
	}
	if f.CurrentName == "" {
		return fmt.Errorf("current name is required")
	}
	if f.CountryID <= 0 {
		return fmt.Errorf("former name country id is required")
	}

	return nil
}
