package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	basecache "github.com/riskibarqy/sleeper-league/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	key := "league:id:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeague{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeague)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) GetBySleeperID(ctx context.Context, sleeperLeagueID string) (league.League, bool, error) {
	key := "league:sleeper:" + sleeperLeagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBySleeperID(ctx, sleeperLeagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeague{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeague)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return league.League{}, err
	}
	r.cache.DeletePrefix(ctx, "league:")
	return created, nil
}

func (r *LeagueRepository) UpdateSeason(ctx context.Context, leagueID int64, season int) error {
	if err := r.next.UpdateSeason(ctx, leagueID, season); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "league:")
	return nil
}

type cachedLeague struct {
	value  league.League
	exists bool
}

// TeamRepository caches listings only. Every write drops all cached listings
// because standings, flags and top players all show up in them.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func teamListKey(filter team.ListFilter) string {
	return "team:list:" + strconv.FormatInt(filter.LeagueID, 10) + ":" + strconv.FormatBool(filter.PlayoffsOnly) + ":" + string(filter.Ordering)
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey(filter), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.next.GetByID(ctx, teamID)
}

func (r *TeamRepository) GetByRoster(ctx context.Context, leagueID int64, rosterID int) (team.Team, bool, error) {
	return r.next.GetByRoster(ctx, leagueID, rosterID)
}

func (r *TeamRepository) UpsertStanding(ctx context.Context, standing team.Standing) (team.Team, error) {
	item, err := r.next.UpsertStanding(ctx, standing)
	if err != nil {
		return team.Team{}, err
	}
	r.invalidate(ctx)
	return item, nil
}

func (r *TeamRepository) ReplaceTopPlayers(ctx context.Context, teamID int64, players []team.TopPlayer) error {
	if err := r.next.ReplaceTopPlayers(ctx, teamID, players); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *TeamRepository) ResetPlayoffFlags(ctx context.Context, leagueID int64) error {
	if err := r.next.ResetPlayoffFlags(ctx, leagueID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *TeamRepository) MarkPlayoffTeams(ctx context.Context, leagueID int64, rosterIDs []int) error {
	if err := r.next.MarkPlayoffTeams(ctx, leagueID, rosterIDs); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *TeamRepository) TogglePlayoffFlag(ctx context.Context, teamID int64) (team.Team, bool, error) {
	item, ok, err := r.next.TogglePlayoffFlag(ctx, teamID)
	if err != nil {
		return team.Team{}, false, err
	}
	r.invalidate(ctx)
	return item, ok, nil
}

func (r *TeamRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "team:")
}

type CommonPlayerRepository struct {
	next  commonplayer.Repository
	cache *basecache.Store
}

func NewCommonPlayerRepository(next commonplayer.Repository, cache *basecache.Store) *CommonPlayerRepository {
	return &CommonPlayerRepository{next: next, cache: cache}
}

func (r *CommonPlayerRepository) List(ctx context.Context) ([]commonplayer.CommonPlayer, error) {
	items, err := basecache.Load(ctx, r.cache, "common-player:list", func(ctx context.Context) ([]commonplayer.CommonPlayer, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]commonplayer.CommonPlayer(nil), items...), nil
}

func (r *CommonPlayerRepository) ReplaceAll(ctx context.Context, items []commonplayer.CommonPlayer) error {
	if err := r.next.ReplaceAll(ctx, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, "common-player:list")
	return nil
}
