package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByRoster(ctx context.Context, leagueID int64, rosterID int) (Team, bool, error)
	// UpsertStanding is keyed on (league, roster id).
	UpsertStanding(ctx context.Context, standing Standing) (Team, error)
	// ReplaceTopPlayers overwrites the stored list wholesale.
	ReplaceTopPlayers(ctx context.Context, teamID int64, players []TopPlayer) error
	ResetPlayoffFlags(ctx context.Context, leagueID int64) error
	MarkPlayoffTeams(ctx context.Context, leagueID int64, rosterIDs []int) error
	TogglePlayoffFlag(ctx context.Context, teamID int64) (Team, bool, error)
}
