package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
)

type leagueTableModel struct {
	ID              int64         `db:"id"`
	Name            string        `db:"name"`
	SleeperLeagueID string        `db:"sleeper_league_id"`
	Season          int           `db:"season"`
	CommissionerID  sql.NullInt64 `db:"commissioner_id"`
	CreatedAt       time.Time     `db:"created_at"`
}

type leagueInsertModel struct {
	Name            string `db:"name"`
	SleeperLeagueID string `db:"sleeper_league_id"`
	Season          int    `db:"season"`
	CommissionerID  *int64 `db:"commissioner_id"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:              m.ID,
		Name:            m.Name,
		SleeperLeagueID: m.SleeperLeagueID,
		Season:          m.Season,
		CommissionerID:  nullInt64Ptr(m.CommissionerID),
		CreatedAt:       m.CreatedAt,
	}
}
