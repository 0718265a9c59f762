package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
)

type WeeklyScoreRepository struct {
	store *Store
}

func NewWeeklyScoreRepository(store *Store) *WeeklyScoreRepository {
	return &WeeklyScoreRepository{store: store}
}

func (r *WeeklyScoreRepository) Upsert(_ context.Context, item weeklyscore.WeeklyScore) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.find(item.TeamID, item.Week, item.Season)
	if ok {
		item.ID = existing.ID
	} else {
		item.ID = r.store.nextID()
	}
	item.PointsScored = weeklyscore.RoundPoints(item.PointsScored)
	item.UpdatedAt = r.store.now()
	r.store.weeklyScores[item.ID] = item
	return nil
}

// find must be called with mu held.
func (r *WeeklyScoreRepository) find(teamID int64, week, season int) (weeklyscore.WeeklyScore, bool) {
	for _, item := range r.store.weeklyScores {
		if item.TeamID == teamID && item.Week == week && item.Season == season {
			return item, true
		}
	}
	return weeklyscore.WeeklyScore{}, false
}

func (r *WeeklyScoreRepository) Get(_ context.Context, teamID int64, week, season int) (weeklyscore.WeeklyScore, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.find(teamID, week, season)
	return item, ok, nil
}

func (r *WeeklyScoreRepository) List(_ context.Context, filter weeklyscore.Filter) ([]weeklyscore.WeeklyScore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]weeklyscore.WeeklyScore, 0)
	for _, item := range r.store.weeklyScores {
		if filter.TeamID > 0 && item.TeamID != filter.TeamID {
			continue
		}
		if filter.LeagueID > 0 && r.store.teams[item.TeamID].LeagueID != filter.LeagueID {
			continue
		}
		if filter.Week > 0 && item.Week != filter.Week {
			continue
		}
		if filter.Season > 0 && item.Season != filter.Season {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		if a.PointsScored != b.PointsScored {
			return a.PointsScored > b.PointsScored
		}
		return a.TeamID < b.TeamID
	})
	return out, nil
}

func (r *WeeklyScoreRepository) TopForLeagueWeek(_ context.Context, leagueID int64, week, season int) (weeklyscore.LeagueWinner, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var (
		best  weeklyscore.LeagueWinner
		found bool
	)
	for _, item := range r.store.weeklyScores {
		t, ok := r.store.teams[item.TeamID]
		if !ok || t.LeagueID != leagueID || item.Week != week {
			continue
		}
		if season > 0 && item.Season != season {
			continue
		}
		if found {
			if item.PointsScored < best.Score.PointsScored {
				continue
			}
			if item.PointsScored == best.Score.PointsScored && item.TeamID > best.Score.TeamID {
				continue
			}
		}
		best = weeklyscore.LeagueWinner{Score: item, TeamName: t.TeamName, OwnerID: t.OwnerID}
		found = true
	}
	return best, found, nil
}

func (r *WeeklyScoreRepository) LatestWeek(_ context.Context) (int, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	latest := 0
	for _, item := range r.store.weeklyScores {
		if item.Week > latest {
			latest = item.Week
		}
	}
	return latest, latest > 0, nil
}
