package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type WeeklyScoreRepository struct {
	db *sqlx.DB
}

func NewWeeklyScoreRepository(db *sqlx.DB) *WeeklyScoreRepository {
	return &WeeklyScoreRepository{db: db}
}

func (r *WeeklyScoreRepository) Upsert(ctx context.Context, item weeklyscore.WeeklyScore) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query, args, err := qb.InsertModel("weekly_scores", weeklyScoreInsertModel{
		TeamID:       item.TeamID,
		Week:         item.Week,
		Season:       item.Season,
		PointsScored: weeklyscore.RoundPoints(item.PointsScored),
	}, `ON CONFLICT (team_id, week, season)
DO UPDATE SET
    points_scored = EXCLUDED.points_scored,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert weekly score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert weekly score team_id=%d week=%d season=%d: %w", item.TeamID, item.Week, item.Season, err)
	}
	return nil
}

func (r *WeeklyScoreRepository) Get(ctx context.Context, teamID int64, week, season int) (weeklyscore.WeeklyScore, bool, error) {
	query, args, err := qb.Select("*").From("weekly_scores").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("week", week),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return weeklyscore.WeeklyScore{}, false, fmt.Errorf("build get weekly score query: %w", err)
	}

	var row weeklyScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return weeklyscore.WeeklyScore{}, false, nil
		}
		return weeklyscore.WeeklyScore{}, false, fmt.Errorf("get weekly score: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *WeeklyScoreRepository) List(ctx context.Context, filter weeklyscore.Filter) ([]weeklyscore.WeeklyScore, error) {
	conds := make([]qb.Condition, 0, 4)
	if filter.TeamID > 0 {
		conds = append(conds, qb.Eq("ws.team_id", filter.TeamID))
	}
	if filter.LeagueID > 0 {
		conds = append(conds, qb.Eq("t.league_id", filter.LeagueID))
	}
	if filter.Week > 0 {
		conds = append(conds, qb.Eq("ws.week", filter.Week))
	}
	if filter.Season > 0 {
		conds = append(conds, qb.Eq("ws.season", filter.Season))
	}

	query, args, err := qb.Select("ws.*").From("weekly_scores ws JOIN teams t ON t.id = ws.team_id").
		Where(conds...).
		OrderBy("ws.season", "ws.week", "ws.points_scored DESC", "ws.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weekly scores query: %w", err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weekly scores: %w", err)
	}

	out := make([]weeklyscore.WeeklyScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *WeeklyScoreRepository) TopForLeagueWeek(ctx context.Context, leagueID int64, week, season int) (weeklyscore.LeagueWinner, bool, error) {
	conds := []qb.Condition{
		qb.Eq("t.league_id", leagueID),
		qb.Eq("ws.week", week),
	}
	if season > 0 {
		conds = append(conds, qb.Eq("ws.season", season))
	}

	query, args, err := qb.Select("ws.*", "t.team_name", "t.owner_id").
		From("weekly_scores ws JOIN teams t ON t.id = ws.team_id").
		Where(conds...).
		OrderBy("ws.points_scored DESC", "ws.team_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return weeklyscore.LeagueWinner{}, false, fmt.Errorf("build top weekly score query: %w", err)
	}

	var row leagueWinnerRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return weeklyscore.LeagueWinner{}, false, nil
		}
		return weeklyscore.LeagueWinner{}, false, fmt.Errorf("top weekly score league_id=%d week=%d: %w", leagueID, week, err)
	}

	return weeklyscore.LeagueWinner{
		Score:    row.weeklyScoreTableModel.toDomain(),
		TeamName: row.TeamName,
		OwnerID:  nullInt64Ptr(row.OwnerID),
	}, true, nil
}

func (r *WeeklyScoreRepository) LatestWeek(ctx context.Context) (int, bool, error) {
	query, args, err := qb.Select("MAX(week)").From("weekly_scores").ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build latest week query: %w", err)
	}

	var week sql.NullInt64
	if err := r.db.GetContext(ctx, &week, query, args...); err != nil {
		return 0, false, fmt.Errorf("latest scored week: %w", err)
	}
	if !week.Valid {
		return 0, false, nil
	}
	return int(week.Int64), true, nil
}
