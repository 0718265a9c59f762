package weeklyscore

import "context"

type Repository interface {
	// Upsert is keyed on (team, week, season).
	Upsert(ctx context.Context, item WeeklyScore) error
	Get(ctx context.Context, teamID int64, week, season int) (WeeklyScore, bool, error)
	List(ctx context.Context, filter Filter) ([]WeeklyScore, error)
	TopForLeagueWeek(ctx context.Context, leagueID int64, week, season int) (LeagueWinner, bool, error)
	LatestWeek(ctx context.Context) (int, bool, error)
}
