package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type PlayoffRepository struct {
	db *sqlx.DB
}

func NewPlayoffRepository(db *sqlx.DB) *PlayoffRepository {
	return &PlayoffRepository{db: db}
}

func (r *PlayoffRepository) GetOrCreate(ctx context.Context, key playoff.Key) (playoff.Entry, bool, error) {
	if err := key.Validate(); err != nil {
		return playoff.Entry{}, false, err
	}

	insertQuery, insertArgs, err := qb.InsertModel("playoff_entries", playoffEntryInsertModel{
		TeamID:      key.TeamID,
		Season:      key.Season,
		PlayoffWeek: key.Week,
	}, "ON CONFLICT (team_id, season, playoff_week) DO NOTHING RETURNING *")
	if err != nil {
		return playoff.Entry{}, false, fmt.Errorf("build create playoff entry query: %w", err)
	}

	var row playoffEntryTableModel
	err = r.db.GetContext(ctx, &row, insertQuery, insertArgs...)
	if err == nil {
		return row.toDomain(), true, nil
	}
	if !isNotFound(err) {
		return playoff.Entry{}, false, fmt.Errorf("create playoff entry team_id=%d week=%d: %w", key.TeamID, key.Week, err)
	}

	selectQuery, selectArgs, err := qb.Select("*").From("playoff_entries").
		Where(
			qb.Eq("team_id", key.TeamID),
			qb.Eq("season", key.Season),
			qb.Eq("playoff_week", key.Week),
		).
		ToSQL()
	if err != nil {
		return playoff.Entry{}, false, fmt.Errorf("build get playoff entry query: %w", err)
	}
	if err := r.db.GetContext(ctx, &row, selectQuery, selectArgs...); err != nil {
		return playoff.Entry{}, false, fmt.Errorf("get existing playoff entry team_id=%d week=%d: %w", key.TeamID, key.Week, err)
	}
	return row.toDomain(), false, nil
}

func (r *PlayoffRepository) ListActive(ctx context.Context, week, season int) ([]playoff.Entry, error) {
	conds := []qb.Condition{
		qb.Eq("playoff_week", week),
		qb.Eq("is_eliminated", false),
	}
	if season > 0 {
		conds = append(conds, qb.Eq("season", season))
	}

	query, args, err := qb.Select("*").From("playoff_entries").
		Where(conds...).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active playoff entries query: %w", err)
	}
	return r.selectEntries(ctx, "select active playoff entries", query, args)
}

func (r *PlayoffRepository) List(ctx context.Context, filter playoff.Filter) ([]playoff.Entry, error) {
	conds := make([]qb.Condition, 0, 2)
	if filter.Season > 0 {
		conds = append(conds, qb.Eq("season", filter.Season))
	}
	if filter.Week > 0 {
		conds = append(conds, qb.Eq("playoff_week", filter.Week))
	}

	query, args, err := qb.Select("*").From("playoff_entries").
		Where(conds...).
		OrderBy("playoff_week", "week_score DESC", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select playoff entries query: %w", err)
	}
	return r.selectEntries(ctx, "select playoff entries", query, args)
}

func (r *PlayoffRepository) selectEntries(ctx context.Context, op, query string, args []any) ([]playoff.Entry, error) {
	var rows []playoffEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]playoff.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayoffRepository) SaveRoundResults(ctx context.Context, week int, results []playoff.RoundResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save round results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, result := range results {
		query, args, err := qb.Update("playoff_entries").
			Set("week_score", result.Score).
			Set("final_rank", result.Rank).
			Set("is_eliminated", result.Eliminated).
			Where(
				qb.Eq("id", result.EntryID),
				qb.Eq("playoff_week", week),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build save round result query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save round result entry_id=%d: %w", result.EntryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save round results tx: %w", err)
	}
	return nil
}

func (r *PlayoffRepository) ExistsForLeague(ctx context.Context, leagueID int64, season int) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("playoff_entries pe JOIN teams t ON t.id = pe.team_id").
		Where(
			qb.Eq("t.league_id", leagueID),
			qb.Eq("pe.season", season),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build playoff entries exist query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count playoff entries league_id=%d season=%d: %w", leagueID, season, err)
	}
	return count > 0, nil
}
