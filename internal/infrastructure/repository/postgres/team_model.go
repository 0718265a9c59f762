package postgres

import (
	"database/sql"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
)

type teamTableModel struct {
	ID                 int64         `db:"id"`
	LeagueID           int64         `db:"league_id"`
	OwnerID            sql.NullInt64 `db:"owner_id"`
	SleeperRosterID    int           `db:"sleeper_roster_id"`
	TeamName           string        `db:"team_name"`
	MadeLeaguePlayoffs bool          `db:"made_league_playoffs"`
	Wins               int           `db:"wins"`
	Losses             int           `db:"losses"`
	Ties               int           `db:"ties"`
	PointsFor          float64       `db:"points_for"`
	TopPlayers         []byte        `db:"top_players"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

// standingUpsertColumns are refreshed on every sync; made_league_playoffs
// and top_players are owned by other passes.
var standingUpsertColumns = []string{"owner_id", "team_name", "wins", "losses", "ties", "points_for"}

type teamStandingInsertModel struct {
	LeagueID        int64   `db:"league_id"`
	OwnerID         *int64  `db:"owner_id"`
	SleeperRosterID int     `db:"sleeper_roster_id"`
	TeamName        string  `db:"team_name"`
	Wins            int     `db:"wins"`
	Losses          int     `db:"losses"`
	Ties            int     `db:"ties"`
	PointsFor       float64 `db:"points_for"`
}

func (m teamTableModel) toDomain() (team.Team, error) {
	players := []team.TopPlayer{}
	if len(m.TopPlayers) > 0 {
		if err := jsoniter.Unmarshal(m.TopPlayers, &players); err != nil {
			return team.Team{}, fmt.Errorf("decode top players team_id=%d: %w", m.ID, err)
		}
	}

	return team.Team{
		ID:                 m.ID,
		LeagueID:           m.LeagueID,
		OwnerID:            nullInt64Ptr(m.OwnerID),
		SleeperRosterID:    m.SleeperRosterID,
		TeamName:           m.TeamName,
		MadeLeaguePlayoffs: m.MadeLeaguePlayoffs,
		Wins:               m.Wins,
		Losses:             m.Losses,
		Ties:               m.Ties,
		PointsFor:          m.PointsFor,
		TopPlayers:         players,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

func teamOrderBy(ordering team.Ordering) []string {
	switch ordering {
	case team.OrderWinsDesc:
		return []string{"wins DESC", "id"}
	case team.OrderWinsAsc:
		return []string{"wins ASC", "id"}
	case team.OrderPointsForDesc:
		return []string{"points_for DESC", "id"}
	case team.OrderPointsForAsc:
		return []string{"points_for ASC", "id"}
	case team.OrderPowerRanking:
		return []string{"wins DESC", "points_for DESC", "id"}
	default:
		return []string{"league_id", "sleeper_roster_id"}
	}
}
