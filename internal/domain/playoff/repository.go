package playoff

import "context"

type Repository interface {
	// GetOrCreate returns the entry for key and whether it was created.
	GetOrCreate(ctx context.Context, key Key) (Entry, bool, error)
	// ListActive returns non-eliminated entries for week. Season 0 spans all seasons.
	ListActive(ctx context.Context, week, season int) ([]Entry, error)
	// SaveRoundResults persists scores, ranks and elimination flags atomically.
	SaveRoundResults(ctx context.Context, week int, results []RoundResult) error
	ExistsForLeague(ctx context.Context, leagueID int64, season int) (bool, error)
	List(ctx context.Context, filter Filter) ([]Entry, error)
}
