package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		if filter.LeagueID > 0 && item.LeagueID != filter.LeagueID {
			continue
		}
		if filter.PlayoffsOnly && !item.MadeLeaguePlayoffs {
			continue
		}
		out = append(out, cloneTeam(item))
	}
	sort.Slice(out, teamLess(out, filter.Ordering))
	return out, nil
}

func teamLess(items []team.Team, ordering team.Ordering) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := items[i], items[j]
		switch ordering {
		case team.OrderWinsDesc:
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
		case team.OrderWinsAsc:
			if a.Wins != b.Wins {
				return a.Wins < b.Wins
			}
		case team.OrderPointsForDesc:
			if a.PointsFor != b.PointsFor {
				return a.PointsFor > b.PointsFor
			}
		case team.OrderPointsForAsc:
			if a.PointsFor != b.PointsFor {
				return a.PointsFor < b.PointsFor
			}
		case team.OrderPowerRanking:
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			if a.PointsFor != b.PointsFor {
				return a.PointsFor > b.PointsFor
			}
		default:
			if a.LeagueID != b.LeagueID {
				return a.LeagueID < b.LeagueID
			}
			return a.SleeperRosterID < b.SleeperRosterID
		}
		return a.ID < b.ID
	}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return cloneTeam(item), true, nil
}

func (r *TeamRepository) GetByRoster(_ context.Context, leagueID int64, rosterID int) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.findByRoster(leagueID, rosterID)
	if !ok {
		return team.Team{}, false, nil
	}
	return cloneTeam(item), true, nil
}

// findByRoster must be called with mu held.
func (r *TeamRepository) findByRoster(leagueID int64, rosterID int) (team.Team, bool) {
	for _, item := range r.store.teams {
		if item.LeagueID == leagueID && item.SleeperRosterID == rosterID {
			return item, true
		}
	}
	return team.Team{}, false
}

func (r *TeamRepository) UpsertStanding(_ context.Context, standing team.Standing) (team.Team, error) {
	if err := standing.Validate(); err != nil {
		return team.Team{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.findByRoster(standing.LeagueID, standing.SleeperRosterID)
	if !ok {
		item = team.Team{
			ID:              r.store.nextID(),
			LeagueID:        standing.LeagueID,
			SleeperRosterID: standing.SleeperRosterID,
			TopPlayers:      []team.TopPlayer{},
		}
	}
	item.OwnerID = standing.OwnerID
	item.TeamName = standing.TeamName
	item.Wins = standing.Wins
	item.Losses = standing.Losses
	item.Ties = standing.Ties
	item.PointsFor = standing.PointsFor
	item.UpdatedAt = r.store.now()
	r.store.teams[item.ID] = item

	return cloneTeam(item), nil
}

func (r *TeamRepository) ReplaceTopPlayers(_ context.Context, teamID int64, players []team.TopPlayer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.teams[teamID]
	if !ok {
		return nil
	}
	item.TopPlayers = append([]team.TopPlayer{}, players...)
	item.UpdatedAt = r.store.now()
	r.store.teams[teamID] = item
	return nil
}

func (r *TeamRepository) ResetPlayoffFlags(_ context.Context, leagueID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, item := range r.store.teams {
		if item.LeagueID == leagueID && item.MadeLeaguePlayoffs {
			item.MadeLeaguePlayoffs = false
			r.store.teams[id] = item
		}
	}
	return nil
}

func (r *TeamRepository) MarkPlayoffTeams(_ context.Context, leagueID int64, rosterIDs []int) error {
	wanted := make(map[int]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		wanted[id] = struct{}{}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, item := range r.store.teams {
		if item.LeagueID != leagueID {
			continue
		}
		if _, ok := wanted[item.SleeperRosterID]; ok {
			item.MadeLeaguePlayoffs = true
			r.store.teams[id] = item
		}
	}
	return nil
}

func (r *TeamRepository) TogglePlayoffFlag(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	item.MadeLeaguePlayoffs = !item.MadeLeaguePlayoffs
	item.UpdatedAt = r.store.now()
	r.store.teams[teamID] = item
	return cloneTeam(item), true, nil
}

func cloneTeam(item team.Team) team.Team {
	copied := item
	copied.TopPlayers = append([]team.TopPlayer{}, item.TopPlayers...)
	return copied
}
