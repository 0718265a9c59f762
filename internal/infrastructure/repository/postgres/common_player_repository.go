package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type commonPlayerTableModel struct {
	ID           int64   `db:"id"`
	Rank         int     `db:"rank"`
	PlayerID     string  `db:"player_id"`
	PlayerName   string  `db:"player_name"`
	Position     string  `db:"position"`
	NFLTeam      string  `db:"nfl_team"`
	Count        int     `db:"count"`
	AverageScore float64 `db:"average_score"`
}

var commonPlayerColumns = []string{"rank", "player_id", "player_name", "position", "nfl_team", "count", "average_score"}

type CommonPlayerRepository struct {
	db *sqlx.DB
}

func NewCommonPlayerRepository(db *sqlx.DB) *CommonPlayerRepository {
	return &CommonPlayerRepository{db: db}
}

func (r *CommonPlayerRepository) List(ctx context.Context) ([]commonplayer.CommonPlayer, error) {
	query, args, err := qb.Select("*").From("common_players").
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select common players query: %w", err)
	}

	var rows []commonPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select common players: %w", err)
	}

	out := make([]commonplayer.CommonPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, commonplayer.CommonPlayer{
			Rank:         row.Rank,
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			Position:     row.Position,
			NFLTeam:      row.NFLTeam,
			Count:        row.Count,
			AverageScore: row.AverageScore,
		})
	}
	return out, nil
}

func (r *CommonPlayerRepository) ReplaceAll(ctx context.Context, items []commonplayer.CommonPlayer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace common players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("common_players").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete common players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete common players: %w", err)
	}

	if len(items) > 0 {
		insert := qb.InsertInto("common_players").Columns(commonPlayerColumns...)
		for _, item := range items {
			insert.Values(item.Rank, item.PlayerID, item.PlayerName, item.Position, item.NFLTeam, item.Count, item.AverageScore)
		}
		insertQuery, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert common players query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert common players: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace common players tx: %w", err)
	}
	return nil
}
