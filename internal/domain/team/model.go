package team

import (
	"fmt"
	"time"
)

// Team is one roster inside a fantasy league.
type Team struct {
	ID                 int64
	LeagueID           int64
	OwnerID            *int64
	SleeperRosterID    int
	TeamName           string
	MadeLeaguePlayoffs bool
	Wins               int
	Losses             int
	Ties               int
	PointsFor          float64
	TopPlayers         []TopPlayer
	UpdatedAt          time.Time
}

// TopPlayer is one entry of a team's season scoring leaders.
type TopPlayer struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	TotalPoints float64 `json:"total_points"`
	AvatarURL   string  `json:"avatar_url"`
}

// Standing is the reconciled roster state written on every sync.
type Standing struct {
	LeagueID        int64
	SleeperRosterID int
	OwnerID         *int64
	TeamName        string
	Wins            int
	Losses          int
	Ties            int
	PointsFor       float64
}

func (s Standing) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if s.SleeperRosterID <= 0 {
		return fmt.Errorf("sleeper roster id is required")
	}
	if s.TeamName == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

type Ordering string

const (
	OrderDefault       Ordering = ""
	OrderWinsDesc      Ordering = "-wins"
	OrderWinsAsc       Ordering = "wins"
	OrderPointsForDesc Ordering = "-points_for"
	OrderPointsForAsc  Ordering = "points_for"
	// OrderPowerRanking sorts by wins then points for, both descending.
	OrderPowerRanking Ordering = "power"
)

func ParseOrdering(raw string) (Ordering, error) {
	switch o := Ordering(raw); o {
	case OrderDefault, OrderWinsDesc, OrderWinsAsc, OrderPointsForDesc, OrderPointsForAsc, OrderPowerRanking:
		return o, nil
	default:
		return "", fmt.Errorf("unsupported ordering %q", raw)
	}
}

// ListFilter narrows team listings. Zero values mean no restriction.
type ListFilter struct {
	LeagueID     int64
	PlayoffsOnly bool
	Ordering     Ordering
}
