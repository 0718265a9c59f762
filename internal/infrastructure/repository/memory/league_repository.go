package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]league.League, 0, len(r.store.leagues))
	for _, item := range r.store.leagues {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.leagues[leagueID]
	return item, ok, nil
}

func (r *LeagueRepository) GetBySleeperID(_ context.Context, sleeperLeagueID string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.leagues {
		if item.SleeperLeagueID == sleeperLeagueID {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) (league.League, error) {
	if err := item.Validate(); err != nil {
		return league.League{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.leagues {
		if existing.SleeperLeagueID == item.SleeperLeagueID {
			return league.League{}, fmt.Errorf("create league sleeper_league_id=%s: duplicate", item.SleeperLeagueID)
		}
	}

	item.ID = r.store.nextID()
	item.CreatedAt = r.store.now()
	r.store.leagues[item.ID] = item
	return item, nil
}

func (r *LeagueRepository) UpdateSeason(_ context.Context, leagueID int64, season int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.leagues[leagueID]
	if !ok {
		return nil
	}
	item.Season = season
	r.store.leagues[leagueID] = item
	return nil
}
