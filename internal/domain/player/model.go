package player

import "fmt"

// Player is a goalscorer. Identity is the (Name, CountryID) pair; the
// ingestion pipeline deduplicates on it.
type Player struct {
	ID        int64
	Name      string
	CountryID int64
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.CountryID <= 0 {
		return fmt.Errorf("player country id is required")
	}

	return nil
}
