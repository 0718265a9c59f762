package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	GetBySleeperID(ctx context.Context, sleeperLeagueID string) (League, bool, error)
	Create(ctx context.Context, item League) (League, error)
	UpdateSeason(ctx context.Context, leagueID int64, season int) error
}
