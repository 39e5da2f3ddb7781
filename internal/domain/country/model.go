package country

import "fmt"

// Country is a national team and the canonical owner of every team name
// used as a join key across matches, players, goals and shootouts.
type Country struct {
	ID        int64
	Name      string
	ISOCode   string
	Continent string
	Region    string
	Status    string
	Developed string
	// Population and AreaSqKm are absent, not zero, when the source CSV
	// has no value for them.
	Population *int64
	AreaSqKm   *int64
}

func (c Country) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("country name is required")
	}

	return nil
}
