package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	leagueSyncStatusSuccess = "success"
	leagueSyncStatusFailed  = "failed"
)

type SyncResult struct {
	NFLWeek       int                `json:"nfl_week"`
	NFLSeason     int                `json:"nfl_season"`
	LeagueCount   int                `json:"league_count"`
	SuccessCount  int                `json:"success_count"`
	FailedCount   int                `json:"failed_count"`
	Leagues       []LeagueSyncResult `json:"leagues"`
	CommonPlayers CommonPlayerResult `json:"common_players"`
	DurationMs    int64              `json:"duration_ms"`
}

type LeagueSyncResult struct {
	LeagueID        int64                `json:"league_id"`
	SleeperLeagueID string               `json:"sleeper_league_id"`
	Name            string               `json:"name"`
	Season          int                  `json:"season"`
	Status          string               `json:"status"`
	Message         string               `json:"message,omitempty"`
	Identities      IdentityResult       `json:"identities"`
	Rosters         RosterResult         `json:"rosters"`
	Scores          ScoreIngestionResult `json:"scores"`
	Latch           LatchResult          `json:"latch"`
}

// SyncService runs a full mirror pass: global state first, then every
// league in turn, then the common-player reduction. A league failure is
// recorded and the pass moves on.
type SyncService struct {
	source     LeagueSource
	leagueRepo league.Repository
	identities *IdentityReconciler
	rosters    *RosterReconciler
	scores     *ScoreIngestion
	latch      *PlayoffLatch
	aggregator *CommonPlayerAggregator
	locker     jobrun.Locker
	logger     *logging.Logger
	now        func() time.Time
}

func NewSyncService(
	source LeagueSource,
	leagueRepo league.Repository,
	identities *IdentityReconciler,
	rosters *RosterReconciler,
	scores *ScoreIngestion,
	latch *PlayoffLatch,
	aggregator *CommonPlayerAggregator,
	locker jobrun.Locker,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		source:     source,
		leagueRepo: leagueRepo,
		identities: identities,
		rosters:    rosters,
		scores:     scores,
		latch:      latch,
		aggregator: aggregator,
		locker:     locker,
		logger:     logger.Named("sync"),
		now:        time.Now,
	}
}

func (s *SyncService) Run(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Run")
	defer span.End()

	release, err := acquirePassLock(ctx, s.locker, jobrun.JobSync)
	if err != nil {
		return SyncResult{}, err
	}
	defer release()

	start := s.now()
	state, err := s.source.FetchNFLState(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch nfl state: %w", err)
	}
	s.logger.InfoContext(ctx, "sync started", "nfl_week", state.Week, "nfl_season", state.Season)

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list leagues for sync: %w", err)
	}

	result := SyncResult{
		NFLWeek:     state.Week,
		NFLSeason:   state.Season,
		LeagueCount: len(leagues),
		Leagues:     make([]LeagueSyncResult, 0, len(leagues)),
	}
	if len(leagues) == 0 {
		s.logger.WarnContext(ctx, "no leagues registered, nothing to sync")
		result.DurationMs = s.now().Sub(start).Milliseconds()
		return result, nil
	}

	contributions := make([]commonplayer.Contribution, 0, len(leagues))
	for _, item := range leagues {
		row, contribution, err := s.syncLeague(ctx, item, state)
		if err != nil {
			row.Status = leagueSyncStatusFailed
			row.Message = err.Error()
			result.FailedCount++
			s.logger.ErrorContext(ctx, "league sync failed",
				"league_id", item.ID,
				"sleeper_league_id", item.SleeperLeagueID,
				"error", err,
			)
		} else {
			row.Status = leagueSyncStatusSuccess
			result.SuccessCount++
			contributions = append(contributions, contribution)
		}
		result.Leagues = append(result.Leagues, row)
	}

	common, err := s.aggregator.Aggregate(ctx, contributions, state.Season)
	if err != nil {
		s.logger.ErrorContext(ctx, "common player aggregation failed", "error", err)
	}
	result.CommonPlayers = common

	result.DurationMs = s.now().Sub(start).Milliseconds()
	s.logger.InfoContext(ctx, "sync finished",
		"leagues", result.LeagueCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

func (s *SyncService) syncLeague(ctx context.Context, item league.League, state ExternalNFLState) (LeagueSyncResult, commonplayer.Contribution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.syncLeague",
		attribute.Int64("league.id", item.ID),
		attribute.String("league.sleeper_id", item.SleeperLeagueID),
	)
	defer span.End()

	row := LeagueSyncResult{
		LeagueID:        item.ID,
		SleeperLeagueID: item.SleeperLeagueID,
		Name:            item.Name,
	}
	var none commonplayer.Contribution

	meta, err := s.source.FetchLeague(ctx, item.SleeperLeagueID)
	if err != nil {
		return row, none, fmt.Errorf("fetch league: %w", err)
	}
	season := meta.Season
	if season <= 0 {
		season = item.Season
	}
	row.Season = season
	// Tournament and weekly winners read the stored season, so it follows
	// whatever season the scores were written under.
	if season != item.Season {
		s.logger.WarnContext(ctx, "league season differs from sleeper, updating",
			"league_id", item.ID,
			"stored_season", item.Season,
			"sleeper_season", season,
		)
		if err := s.leagueRepo.UpdateSeason(ctx, item.ID, season); err != nil {
			return row, none, fmt.Errorf("update league season: %w", err)
		}
	}

	users, err := s.source.FetchUsers(ctx, item.SleeperLeagueID)
	if err != nil {
		return row, none, fmt.Errorf("fetch users: %w", err)
	}
	identities, err := s.identities.Reconcile(ctx, users)
	row.Identities = identities
	if err != nil {
		return row, none, fmt.Errorf("reconcile identities: %w", err)
	}

	rosters, err := s.source.FetchRosters(ctx, item.SleeperLeagueID)
	if err != nil {
		return row, none, fmt.Errorf("fetch rosters: %w", err)
	}
	row.Rosters, err = s.rosters.Reconcile(ctx, item.ID, rosters, identities.CustomTeamNames)
	if err != nil {
		return row, none, fmt.Errorf("reconcile rosters: %w", err)
	}

	row.Scores, err = s.scores.Ingest(ctx, ScoreIngestionInput{
		LeagueID:        item.ID,
		SleeperLeagueID: item.SleeperLeagueID,
		Season:          season,
	})
	if err != nil {
		return row, none, fmt.Errorf("ingest scores: %w", err)
	}

	row.Latch, err = s.latch.Apply(ctx, LatchInput{
		LeagueID:        item.ID,
		SleeperLeagueID: item.SleeperLeagueID,
		Season:          season,
		CurrentWeek:     state.Week,
	})
	if err != nil {
		return row, none, fmt.Errorf("apply playoff latch: %w", err)
	}

	contribution, err := s.aggregator.Contribution(ctx, item, rosters, state.Week)
	if err != nil {
		return row, none, fmt.Errorf("collect common player contribution: %w", err)
	}
	return row, contribution, nil
}
