package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type StartTournamentResult struct {
	PlayoffWeek   int                        `json:"playoff_week"`
	AddedCount    int                        `json:"added_count"`
	ExistingCount int                        `json:"existing_count"`
	Leagues       []StartTournamentLeagueRow `json:"leagues"`
}

type StartTournamentLeagueRow struct {
	LeagueID      int64  `json:"league_id"`
	Name          string `json:"name"`
	Season        int    `json:"season"`
	PlayoffTeams  int    `json:"playoff_teams"`
	AddedCount    int    `json:"added_count"`
	ExistingCount int    `json:"existing_count"`
}

type RunRoundInput struct {
	Week   int `json:"week" validate:"required,gte=1"`
	// Season zero spans every season with active entries for the week.
	Season int `json:"season" validate:"omitempty,gte=1"`
}

type RunRoundResult struct {
	Week          int                   `json:"week"`
	NextWeek      int                   `json:"next_week,omitempty"`
	Contenders    int                   `json:"contenders"`
	AdvanceCount  int                   `json:"advance_count"`
	MissingScores int                   `json:"missing_scores"`
	FinalWeek     bool                  `json:"final_week"`
	Results       []playoff.RoundResult `json:"results"`
}

// TournamentService runs the cross-league elimination tournament among
// teams that made their league playoffs.
type TournamentService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	scoreRepo   weeklyscore.Repository
	playoffRepo playoff.Repository
	locker      jobrun.Locker
	rules       SeasonRules
	logger      *logging.Logger
}

func NewTournamentService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	scoreRepo weeklyscore.Repository,
	playoffRepo playoff.Repository,
	locker jobrun.Locker,
	rules SeasonRules,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		scoreRepo:   scoreRepo,
		playoffRepo: playoffRepo,
		locker:      locker,
		rules:       rules.withDefaults(),
		logger:      logger.Named("tournament"),
	}
}

// Start enters every playoff team at the first tournament week. Running it
// again only reports the entries that already exist.
func (s *TournamentService) Start(ctx context.Context) (StartTournamentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Start")
	defer span.End()

	release, err := acquirePassLock(ctx, s.locker, jobrun.JobStartPlayoff)
	if err != nil {
		return StartTournamentResult{}, err
	}
	defer release()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return StartTournamentResult{}, fmt.Errorf("list leagues for tournament: %w", err)
	}

	result := StartTournamentResult{
		PlayoffWeek: s.rules.PlayoffStartWeek,
		Leagues:     make([]StartTournamentLeagueRow, 0, len(leagues)),
	}
	for _, item := range leagues {
		teams, err := s.teamRepo.List(ctx, team.ListFilter{LeagueID: item.ID, PlayoffsOnly: true})
		if err != nil {
			return result, fmt.Errorf("list playoff teams league_id=%d: %w", item.ID, err)
		}
		row := StartTournamentLeagueRow{
			LeagueID:     item.ID,
			Name:         item.Name,
			Season:       item.Season,
			PlayoffTeams: len(teams),
		}
		if len(teams) == 0 {
			s.logger.WarnContext(ctx, "no playoff teams for league", "league_id", item.ID, "league", item.Name)
		}

		for _, t := range teams {
			_, created, err := s.playoffRepo.GetOrCreate(ctx, playoff.Key{
				TeamID: t.ID,
				Season: item.Season,
				Week:   s.rules.PlayoffStartWeek,
			})
			if err != nil {
				return result, fmt.Errorf("create tournament entry team_id=%d: %w", t.ID, err)
			}
			if created {
				row.AddedCount++
				s.logger.InfoContext(ctx, "tournament entry added", "team_id", t.ID, "team", t.TeamName)
			} else {
				row.ExistingCount++
			}
		}

		result.AddedCount += row.AddedCount
		result.ExistingCount += row.ExistingCount
		result.Leagues = append(result.Leagues, row)
	}

	return result, nil
}

// RunRound scores the active entries of a week, eliminates the bottom half
// and carries the survivors to the next week.
func (s *TournamentService) RunRound(ctx context.Context, input RunRoundInput) (RunRoundResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RunRound", attribute.Int("playoff.week", input.Week))
	defer span.End()

	if input.Week <= 0 {
		return RunRoundResult{}, fmt.Errorf("%w: week is required", ErrInvalidInput)
	}
	if input.Season < 0 {
		return RunRoundResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}

	release, err := acquirePassLock(ctx, s.locker, jobrun.JobRunElimination)
	if err != nil {
		return RunRoundResult{}, err
	}
	defer release()

	entries, err := s.playoffRepo.ListActive(ctx, input.Week, input.Season)
	if err != nil {
		return RunRoundResult{}, fmt.Errorf("list active tournament entries: %w", err)
	}
	if len(entries) == 0 {
		return RunRoundResult{}, fmt.Errorf("%w: no active tournament entries for week %d", ErrNotFound, input.Week)
	}

	result := RunRoundResult{Week: input.Week, Contenders: len(entries)}
	scored := make([]playoff.ScoredEntry, 0, len(entries))
	for _, entry := range entries {
		score, exists, err := s.scoreRepo.Get(ctx, entry.TeamID, input.Week, entry.Season)
		if err != nil {
			return RunRoundResult{}, fmt.Errorf("get weekly score team_id=%d: %w", entry.TeamID, err)
		}
		points := 0.0
		if exists {
			points = score.PointsScored
		} else {
			result.MissingScores++
			s.logger.WarnContext(ctx, "no weekly score for tournament entry, using 0.00",
				"team_id", entry.TeamID,
				"week", input.Week,
				"season", entry.Season,
			)
		}
		scored = append(scored, playoff.ScoredEntry{
			EntryID: entry.ID,
			TeamID:  entry.TeamID,
			Season:  entry.Season,
			Score:   points,
		})
	}

	results := playoff.RankRound(scored)
	result.AdvanceCount = playoff.AdvanceCount(len(results))
	result.Results = results
	if err := s.playoffRepo.SaveRoundResults(ctx, input.Week, results); err != nil {
		return RunRoundResult{}, fmt.Errorf("save round results: %w", err)
	}

	nextWeek := input.Week + 1
	if nextWeek > s.rules.MaxWeek {
		result.FinalWeek = true
		s.logger.InfoContext(ctx, "final tournament week complete", "week", input.Week)
		return result, nil
	}

	result.NextWeek = nextWeek
	for _, r := range results {
		if r.Eliminated {
			continue
		}
		if _, _, err := s.playoffRepo.GetOrCreate(ctx, playoff.Key{TeamID: r.TeamID, Season: r.Season, Week: nextWeek}); err != nil {
			return result, fmt.Errorf("carry team_id=%d to week %d: %w", r.TeamID, nextWeek, err)
		}
	}

	s.logger.InfoContext(ctx, "tournament round complete",
		"week", input.Week,
		"contenders", result.Contenders,
		"advancing", result.AdvanceCount,
	)
	return result, nil
}

// ListEntries returns tournament entries ordered by week, then score descending.
func (s *TournamentService) ListEntries(ctx context.Context, filter playoff.Filter) ([]playoff.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListEntries")
	defer span.End()

	if filter.Season < 0 || filter.Week < 0 {
		return nil, fmt.Errorf("%w: season and week must be positive", ErrInvalidInput)
	}
	items, err := s.playoffRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tournament entries: %w", err)
	}
	return items, nil
}
