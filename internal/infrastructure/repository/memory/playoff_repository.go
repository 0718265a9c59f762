package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
)

type PlayoffRepository struct {
	store *Store
}

func NewPlayoffRepository(store *Store) *PlayoffRepository {
	return &PlayoffRepository{store: store}
}

func (r *PlayoffRepository) GetOrCreate(_ context.Context, key playoff.Key) (playoff.Entry, bool, error) {
	if err := key.Validate(); err != nil {
		return playoff.Entry{}, false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.playoffs {
		if item.TeamID == key.TeamID && item.Season == key.Season && item.PlayoffWeek == key.Week {
			return cloneEntry(item), false, nil
		}
	}

	item := playoff.Entry{
		ID:          r.store.nextID(),
		TeamID:      key.TeamID,
		Season:      key.Season,
		PlayoffWeek: key.Week,
		CreatedAt:   r.store.now(),
	}
	r.store.playoffs[item.ID] = item
	return cloneEntry(item), true, nil
}

func (r *PlayoffRepository) ListActive(_ context.Context, week, season int) ([]playoff.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]playoff.Entry, 0)
	for _, item := range r.store.playoffs {
		if item.PlayoffWeek != week || item.IsEliminated {
			continue
		}
		if season > 0 && item.Season != season {
			continue
		}
		out = append(out, cloneEntry(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

func (r *PlayoffRepository) SaveRoundResults(_ context.Context, week int, results []playoff.RoundResult) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, result := range results {
		item, ok := r.store.playoffs[result.EntryID]
		if !ok || item.PlayoffWeek != week {
			continue
		}
		rank := result.Rank
		item.WeekScore = result.Score
		item.FinalRank = &rank
		item.IsEliminated = result.Eliminated
		r.store.playoffs[item.ID] = item
	}
	return nil
}

func (r *PlayoffRepository) ExistsForLeague(_ context.Context, leagueID int64, season int) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.playoffs {
		if item.Season != season {
			continue
		}
		if t, ok := r.store.teams[item.TeamID]; ok && t.LeagueID == leagueID {
			return true, nil
		}
	}
	return false, nil
}

func (r *PlayoffRepository) List(_ context.Context, filter playoff.Filter) ([]playoff.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]playoff.Entry, 0)
	for _, item := range r.store.playoffs {
		if filter.Season > 0 && item.Season != filter.Season {
			continue
		}
		if filter.Week > 0 && item.PlayoffWeek != filter.Week {
			continue
		}
		out = append(out, cloneEntry(item))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PlayoffWeek != b.PlayoffWeek {
			return a.PlayoffWeek < b.PlayoffWeek
		}
		if a.WeekScore != b.WeekScore {
			return a.WeekScore > b.WeekScore
		}
		return a.TeamID < b.TeamID
	})
	return out, nil
}

func cloneEntry(item playoff.Entry) playoff.Entry {
	copied := item
	if item.FinalRank != nil {
		rank := *item.FinalRank
		copied.FinalRank = &rank
	}
	return copied
}
