package shootout

import (
	"fmt"
	"time"
)

// Shootout is the penalty shootout attached to at most one match.
type Shootout struct {
	ID             int64
	MatchID        int64
	Date           *time.Time
	HomeTeamID     int64
	AwayTeamID     int64
	WinnerID       int64
	FirstShooterID *int64
}

func (s Shootout) Validate() error {
	if s.MatchID <= 0 {
		return fmt.Errorf("shootout match id is required")
	}
	if s.WinnerID <= 0 {
		return fmt.Errorf("shootout winner id is required")
	}

	return nil
}
