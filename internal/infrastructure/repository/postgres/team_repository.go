package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	conds := make([]qb.Condition, 0, 2)
	if filter.LeagueID > 0 {
		conds = append(conds, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.PlayoffsOnly {
		conds = append(conds, qb.Eq("made_league_playoffs", true))
	}

	query, args, err := qb.Select("*").From("teams").
		Where(conds...).
		OrderBy(teamOrderBy(filter.Ordering)...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by id", qb.Eq("id", teamID))
}

func (r *TeamRepository) GetByRoster(ctx context.Context, leagueID int64, rosterID int) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by roster", qb.Eq("league_id", leagueID), qb.Eq("sleeper_roster_id", rosterID))
}

func (r *TeamRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(conds...).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}

	item, err := row.toDomain()
	if err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}

func (r *TeamRepository) UpsertStanding(ctx context.Context, standing team.Standing) (team.Team, error) {
	if err := standing.Validate(); err != nil {
		return team.Team{}, err
	}

	query, args, err := qb.InsertModel("teams", teamStandingInsertModel{
		LeagueID:        standing.LeagueID,
		OwnerID:         standing.OwnerID,
		SleeperRosterID: standing.SleeperRosterID,
		TeamName:        standing.TeamName,
		Wins:            standing.Wins,
		Losses:          standing.Losses,
		Ties:            standing.Ties,
		PointsFor:       standing.PointsFor,
	}, "ON CONFLICT (league_id, sleeper_roster_id) DO UPDATE SET "+
		qb.ExcludedAssignments(standingUpsertColumns...)+
		", updated_at = NOW() RETURNING *")
	if err != nil {
		return team.Team{}, fmt.Errorf("build upsert team standing query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("upsert team standing league_id=%d roster_id=%d: %w", standing.LeagueID, standing.SleeperRosterID, err)
	}
	return row.toDomain()
}

func (r *TeamRepository) ReplaceTopPlayers(ctx context.Context, teamID int64, players []team.TopPlayer) error {
	if players == nil {
		players = []team.TopPlayer{}
	}
	raw, err := jsoniter.Marshal(players)
	if err != nil {
		return fmt.Errorf("marshal top players team_id=%d: %w", teamID, err)
	}

	query, args, err := qb.Update("teams").
		SetExpr("top_players", "?::jsonb", string(raw)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build replace top players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace top players team_id=%d: %w", teamID, err)
	}
	return nil
}

func (r *TeamRepository) ResetPlayoffFlags(ctx context.Context, leagueID int64) error {
	query, args, err := qb.Update("teams").
		Set("made_league_playoffs", false).
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("made_league_playoffs", true),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reset playoff flags query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset playoff flags league_id=%d: %w", leagueID, err)
	}
	return nil
}

func (r *TeamRepository) MarkPlayoffTeams(ctx context.Context, leagueID int64, rosterIDs []int) error {
	if len(rosterIDs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(rosterIDs))
	for _, id := range rosterIDs {
		ids = append(ids, int64(id))
	}

	query, args, err := qb.Update("teams").
		Set("made_league_playoffs", true).
		Where(
			qb.Eq("league_id", leagueID),
			qb.Expr("sleeper_roster_id = ANY(?)", pq.Array(ids)),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark playoff teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark playoff teams league_id=%d: %w", leagueID, err)
	}
	return nil
}

func (r *TeamRepository) TogglePlayoffFlag(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Update("teams").
		SetExpr("made_league_playoffs", "NOT made_league_playoffs").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", teamID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build toggle playoff flag query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("toggle playoff flag team_id=%d: %w", teamID, err)
	}

	item, err := row.toDomain()
	if err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}
