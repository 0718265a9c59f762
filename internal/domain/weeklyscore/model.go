package weeklyscore

import (
	"fmt"
	"math"
	"time"
)

// WeeklyScore is a team's points for one week of one season.
type WeeklyScore struct {
	ID           int64
	TeamID       int64
	Week         int
	Season       int
	PointsScored float64
	UpdatedAt    time.Time
}

func (w WeeklyScore) Validate() error {
	if w.TeamID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if w.Week <= 0 {
		return fmt.Errorf("week must be > 0")
	}
	if w.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	return nil
}

// RoundPoints keeps two decimal places, matching the stored precision.
func RoundPoints(v float64) float64 {
	return math.Round(v*100) / 100
}

// Filter narrows score listings. Zero values mean no restriction.
type Filter struct {
	TeamID   int64
	LeagueID int64
	Week     int
	Season   int
}

// LeagueWinner is the top weekly score of a league joined with its team.
type LeagueWinner struct {
	Score    WeeklyScore
	TeamName string
	OwnerID  *int64
}
