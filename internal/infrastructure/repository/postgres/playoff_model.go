package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
)

type playoffEntryTableModel struct {
	ID           int64         `db:"id"`
	TeamID       int64         `db:"team_id"`
	Season       int           `db:"season"`
	PlayoffWeek  int           `db:"playoff_week"`
	WeekScore    float64       `db:"week_score"`
	IsEliminated bool          `db:"is_eliminated"`
	FinalRank    sql.NullInt64 `db:"final_rank"`
	CreatedAt    time.Time     `db:"created_at"`
}

type playoffEntryInsertModel struct {
	TeamID      int64 `db:"team_id"`
	Season      int   `db:"season"`
	PlayoffWeek int   `db:"playoff_week"`
}

func (m playoffEntryTableModel) toDomain() playoff.Entry {
	return playoff.Entry{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Season:       m.Season,
		PlayoffWeek:  m.PlayoffWeek,
		WeekScore:    m.WeekScore,
		IsEliminated: m.IsEliminated,
		FinalRank:    nullIntPtr(m.FinalRank),
		CreatedAt:    m.CreatedAt,
	}
}
