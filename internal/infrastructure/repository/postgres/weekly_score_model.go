package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
)

type weeklyScoreTableModel struct {
	ID           int64     `db:"id"`
	TeamID       int64     `db:"team_id"`
	Week         int       `db:"week"`
	Season       int       `db:"season"`
	PointsScored float64   `db:"points_scored"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type weeklyScoreInsertModel struct {
	TeamID       int64   `db:"team_id"`
	Week         int     `db:"week"`
	Season       int     `db:"season"`
	PointsScored float64 `db:"points_scored"`
}

type leagueWinnerRow struct {
	weeklyScoreTableModel
	TeamName string        `db:"team_name"`
	OwnerID  sql.NullInt64 `db:"owner_id"`
}

func (m weeklyScoreTableModel) toDomain() weeklyscore.WeeklyScore {
	return weeklyscore.WeeklyScore{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Week:         m.Week,
		Season:       m.Season,
		PointsScored: m.PointsScored,
		UpdatedAt:    m.UpdatedAt,
	}
}
