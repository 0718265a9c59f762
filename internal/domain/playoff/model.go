package playoff

import (
	"fmt"
	"time"
)

// Entry is one team's participation in one round of the cross-league
// elimination tournament.
type Entry struct {
	ID           int64
	TeamID       int64
	Season       int
	PlayoffWeek  int
	WeekScore    float64
	IsEliminated bool
	FinalRank    *int
	CreatedAt    time.Time
}

// Key identifies an entry uniquely.
type Key struct {
	TeamID int64
	Season int
	Week   int
}

func (k Key) Validate() error {
	if k.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if k.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	if k.Week <= 0 {
		return fmt.Errorf("playoff week must be > 0")
	}
	return nil
}

// Filter narrows entry listings. Zero values mean no restriction.
type Filter struct {
	Season int
	Week   int
}

// LatchState records whether a league's playoff qualification flags are frozen.
type LatchState int

const (
	Unlatched LatchState = iota
	Latched
)

// LatchStateOf derives the state from whether any tournament entry exists
// for the league and season.
func LatchStateOf(entriesExist bool) LatchState {
	if entriesExist {
		return Latched
	}
	return Unlatched
}

func (s LatchState) String() string {
	if s == Latched {
		return "latched"
	}
	return "unlatched"
}
