package goal

import "fmt"

// Goal is one scoring event inside a stored match.
type Goal struct {
	ID       int64
	MatchID  int64
	PlayerID int64
	TeamID   int64
	Minute   *int
	OwnGoal  bool
	Penalty  bool
}

func (g Goal) Validate() error {
	if g.MatchID <= 0 {
		return fmt.Errorf("goal match id is required")
	}
	if g.PlayerID <= 0 {
		return fmt.Errorf("goal player id is required")
	}
	if g.TeamID <= 0 {
		return fmt.Errorf("goal team id is required")
	}

	return nil
}

// ScorerTotal is the aggregate row behind the top-scorers leaderboard.
type ScorerTotal struct {
	PlayerID    int64
	PlayerName  string
	CountryName string
	TotalGoals  int
}
