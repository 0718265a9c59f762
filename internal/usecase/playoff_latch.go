package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type LatchAction string

const (
	LatchActionFrozen LatchAction = "frozen"
	LatchActionReset  LatchAction = "reset"
	LatchActionNoData LatchAction = "no_data"
	LatchActionMarked LatchAction = "marked"
)

type LatchInput struct {
	LeagueID        int64
	SleeperLeagueID string
	Season          int
	CurrentWeek     int
}

type LatchResult struct {
	State       playoff.LatchState `json:"-"`
	StateName   string             `json:"state"`
	Action      LatchAction        `json:"action"`
	MarkedTeams int                `json:"marked_teams"`
}

// PlayoffLatch syncs the league playoff qualification flags from the live
// bracket until the tournament starts for the league and season.
type PlayoffLatch struct {
	source      LeagueSource
	playoffRepo playoff.Repository
	teamRepo    team.Repository
	startWeek   int
	logger      *logging.Logger
}

func NewPlayoffLatch(source LeagueSource, playoffRepo playoff.Repository, teamRepo team.Repository, rules SeasonRules, logger *logging.Logger) *PlayoffLatch {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayoffLatch{
		source:      source,
		playoffRepo: playoffRepo,
		teamRepo:    teamRepo,
		startWeek:   rules.withDefaults().PlayoffStartWeek,
		logger:      logger,
	}
}

func (l *PlayoffLatch) Apply(ctx context.Context, input LatchInput) (LatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffLatch.Apply")
	defer span.End()

	started, err := l.playoffRepo.ExistsForLeague(ctx, input.LeagueID, input.Season)
	if err != nil {
		return LatchResult{}, fmt.Errorf("check tournament entries league_id=%d: %w", input.LeagueID, err)
	}
	state := playoff.LatchStateOf(started)
	result := LatchResult{State: state, StateName: state.String()}

	switch {
	case state == playoff.Latched:
		result.Action = LatchActionFrozen
		return result, nil
	case input.CurrentWeek < l.startWeek:
		if err := l.teamRepo.ResetPlayoffFlags(ctx, input.LeagueID); err != nil {
			return result, fmt.Errorf("reset playoff flags league_id=%d: %w", input.LeagueID, err)
		}
		result.Action = LatchActionReset
		return result, nil
	}

	bracket, err := l.source.FetchWinnersBracket(ctx, input.SleeperLeagueID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.logger.WarnContext(ctx, "winners bracket not found", "league_id", input.LeagueID)
			result.Action = LatchActionNoData
			return result, nil
		}
		return result, fmt.Errorf("fetch winners bracket: %w", err)
	}

	rosterIDs := bracketRosterIDs(bracket)
	if len(rosterIDs) == 0 {
		l.logger.WarnContext(ctx, "winners bracket is empty", "league_id", input.LeagueID)
		result.Action = LatchActionNoData
		return result, nil
	}

	if err := l.teamRepo.ResetPlayoffFlags(ctx, input.LeagueID); err != nil {
		return result, fmt.Errorf("reset playoff flags league_id=%d: %w", input.LeagueID, err)
	}
	if err := l.teamRepo.MarkPlayoffTeams(ctx, input.LeagueID, rosterIDs); err != nil {
		return result, fmt.Errorf("mark playoff teams league_id=%d: %w", input.LeagueID, err)
	}
	result.Action = LatchActionMarked
	result.MarkedTeams = len(rosterIDs)
	return result, nil
}

// bracketRosterIDs returns the distinct decided roster ids in bracket order.
func bracketRosterIDs(bracket []ExternalBracketMatch) []int {
	seen := make(map[int]struct{}, len(bracket)*2)
	out := make([]int, 0, len(bracket)*2)
	for _, match := range bracket {
		for _, id := range [...]int{match.Team1, match.Team2} {
			if id <= 0 {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
