package match

import (
	"fmt"
	"time"
)

// Match is a historical international fixture. Date is nil when the source
// row carried a date the loader could not parse; such matches are stored but
// never participate in the date-keyed goal/shootout linkage.
type Match struct {
	ID            int64
	Date          *time.Time
	HomeTeamID    int64
	AwayTeamID    int64
	HomeScore     int
	AwayScore     int
	Tournament    string
	City          string
	HostCountryID *int64
	Neutral       bool
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("match away team id is required")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores cannot be negative")
	}

	return nil
}

// Year returns the calendar year of the match date, or 0 for null dates.
func (m Match) Year() int {
	if m.Date == nil {
		return 0
	}
	return m.Date.Year()
}

// Involves reports whether the given country played in this match.
func (m Match) Involves(countryID int64) bool {
	return m.HomeTeamID == countryID || m.AwayTeamID == countryID
}

// ScoreFor returns goals scored and conceded from the given country's
// perspective. The second return is false when the country did not play.
func (m Match) ScoreFor(countryID int64) (scored, conceded int, ok bool) {
	switch countryID {
	case m.HomeTeamID:
		return m.HomeScore, m.AwayScore, true
	case m.AwayTeamID:
		return m.AwayScore, m.HomeScore, true
	default:
		return 0, 0, false
	}
}
