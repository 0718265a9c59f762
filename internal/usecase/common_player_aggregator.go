package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type CommonPlayerResult struct {
	Candidates   int  `json:"candidates"`
	Persisted    int  `json:"persisted"`
	StatsFailed  int  `json:"stats_failed"`
	TableUpdated bool `json:"table_updated"`
}

// CommonPlayerAggregator builds the league-wide most rostered playoff players
// table. Contribution collects one league's candidate rosters, Aggregate
// reduces every contribution of a pass and replaces the table.
type CommonPlayerAggregator struct {
	source     LeagueSource
	teamRepo   team.Repository
	commonRepo commonplayer.Repository
	rules      SeasonRules
	logger     *logging.Logger
}

func NewCommonPlayerAggregator(
	source LeagueSource,
	teamRepo team.Repository,
	commonRepo commonplayer.Repository,
	rules SeasonRules,
	logger *logging.Logger,
) *CommonPlayerAggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommonPlayerAggregator{
		source:     source,
		teamRepo:   teamRepo,
		commonRepo: commonRepo,
		rules:      rules.withDefaults(),
		logger:     logger,
	}
}

// Contribution picks the candidate rosters of a league. Before the playoff
// start week the live bracket decides, afterwards the stored flags do. An
// unreachable bracket contributes nothing.
func (a *CommonPlayerAggregator) Contribution(ctx context.Context, item league.League, rosters []ExternalRoster, currentWeek int) (commonplayer.Contribution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommonPlayerAggregator.Contribution")
	defer span.End()

	contribution := commonplayer.Contribution{LeagueID: item.SleeperLeagueID}
	targets := make(map[int]struct{})

	if currentWeek < a.rules.PlayoffStartWeek {
		bracket, err := a.source.FetchWinnersBracket(ctx, item.SleeperLeagueID)
		if err != nil {
			a.logger.DebugContext(ctx, "live bracket unavailable for common players",
				"league_id", item.ID,
				"error", err,
			)
			return contribution, nil
		}
		for _, id := range bracketRosterIDs(bracket) {
			targets[id] = struct{}{}
		}
	} else {
		teams, err := a.teamRepo.List(ctx, team.ListFilter{LeagueID: item.ID, PlayoffsOnly: true})
		if err != nil {
			return contribution, fmt.Errorf("list playoff teams league_id=%d: %w", item.ID, err)
		}
		for _, t := range teams {
			targets[t.SleeperRosterID] = struct{}{}
		}
	}

	for _, roster := range rosters {
		if _, ok := targets[roster.RosterID]; !ok {
			continue
		}
		contribution.Rosters = append(contribution.Rosters, append([]string(nil), roster.PlayerIDs...))
	}
	return contribution, nil
}

func (a *CommonPlayerAggregator) Aggregate(ctx context.Context, contributions []commonplayer.Contribution, season int) (CommonPlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommonPlayerAggregator.Aggregate")
	defer span.End()

	var result CommonPlayerResult
	candidates := commonplayer.TopCandidates(commonplayer.CountAppearances(contributions), a.rules.CommonPlayerCandidates)
	result.Candidates = len(candidates)
	if len(candidates) == 0 {
		a.logger.WarnContext(ctx, "no playoff roster players to analyze, common players left untouched")
		return result, nil
	}

	directory, err := a.source.FetchPlayers(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch player directory: %w", err)
	}

	scored := make([]commonplayer.Scored, 0, len(candidates))
	for _, candidate := range candidates {
		info, ok := directory[candidate.PlayerID]
		if !ok || info.Position == commonplayer.ExcludedPosition {
			continue
		}
		scored = append(scored, commonplayer.Scored{
			Candidate:  candidate,
			PlayerName: info.FullName(),
			Position:   info.Position,
			NFLTeam:    info.Team,
		})
	}

	failed, err := a.enrichAverages(ctx, scored, season)
	if err != nil {
		return result, err
	}
	result.StatsFailed = failed

	ranked := commonplayer.Rank(scored, a.rules.CommonPlayerLimit)
	if err := a.commonRepo.ReplaceAll(ctx, ranked); err != nil {
		return result, fmt.Errorf("replace common players: %w", err)
	}
	result.Persisted = len(ranked)
	result.TableUpdated = true
	return result, nil
}

// enrichAverages fills AverageScore in place. A failed stats fetch leaves the
// player at zero.
func (a *CommonPlayerAggregator) enrichAverages(ctx context.Context, scored []commonplayer.Scored, season int) (int, error) {
	if len(scored) == 0 || season <= 0 {
		return 0, nil
	}

	workers := a.rules.CommonPlayerStatsWorkers
	if workers > len(scored) {
		workers = len(scored)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("create stats worker pool: %w", err)
	}
	defer pool.Release()

	var failed atomic.Int32
	var wg sync.WaitGroup
	for i := range scored {
		item := &scored[i]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			weekly, err := a.source.FetchPlayerWeeklyPoints(ctx, item.PlayerID, season)
			if err != nil {
				failed.Add(1)
				a.logger.WarnContext(ctx, "fetch player stats failed",
					"player_id", item.PlayerID,
					"player_name", item.PlayerName,
					"error", err,
				)
				return
			}
			item.AverageScore = commonplayer.SeasonAverage(weekly)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return int(failed.Load()), fmt.Errorf("submit stats task to worker pool: %w", err)
		}
	}
	wg.Wait()

	return int(failed.Load()), nil
}
