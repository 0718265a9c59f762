package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

const (
	weeklyWinnerLookupWorkers = 4
	unownedWinnerName         = "(no owner)"
)

type WeeklyWinner struct {
	LeagueID    int64   `json:"league_id"`
	LeagueName  string  `json:"league_name"`
	Season      int     `json:"season"`
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	OwnerID     *int64  `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	PaymentInfo string  `json:"-"`
	Points      float64 `json:"points"`
}

type WeeklyWinners struct {
	Week    int            `json:"week"`
	Winners []WeeklyWinner `json:"winners"`
}

type PostWinnersInput struct {
	Week          int  `json:"week" validate:"required,gte=1"`
	RecordPayouts bool `json:"record_payouts"`
}

type PostWinnersResult struct {
	Week            int            `json:"week"`
	Winners         []WeeklyWinner `json:"winners"`
	Message         string         `json:"message,omitempty"`
	Posted          bool           `json:"posted"`
	PayoutsRecorded int            `json:"payouts_recorded"`
}

// WeeklyWinnerService finds each league's weekly high scorer and announces
// the payouts.
type WeeklyWinnerService struct {
	leagueRepo league.Repository
	memberRepo member.Repository
	scoreRepo  weeklyscore.Repository
	payoutRepo payout.Repository
	notifier   PayoutNotifier
	rules      SeasonRules
	logger     *logging.Logger
}

func NewWeeklyWinnerService(
	leagueRepo league.Repository,
	memberRepo member.Repository,
	scoreRepo weeklyscore.Repository,
	payoutRepo payout.Repository,
	notifier PayoutNotifier,
	rules SeasonRules,
	logger *logging.Logger,
) *WeeklyWinnerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeeklyWinnerService{
		leagueRepo: leagueRepo,
		memberRepo: memberRepo,
		scoreRepo:  scoreRepo,
		payoutRepo: payoutRepo,
		notifier:   notifier,
		rules:      rules.withDefaults(),
		logger:     logger,
	}
}

// Winners returns the high scorer of every league that has scores for week.
// Week zero means the latest week with any score.
func (s *WeeklyWinnerService) Winners(ctx context.Context, week int) (WeeklyWinners, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyWinnerService.Winners")
	defer span.End()

	if week < 0 {
		return WeeklyWinners{}, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}
	if week == 0 {
		latest, exists, err := s.scoreRepo.LatestWeek(ctx)
		if err != nil {
			return WeeklyWinners{}, fmt.Errorf("get latest scored week: %w", err)
		}
		if !exists {
			return WeeklyWinners{Winners: []WeeklyWinner{}}, nil
		}
		week = latest
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return WeeklyWinners{}, fmt.Errorf("list leagues: %w", err)
	}

	type lookup struct {
		winner WeeklyWinner
		found  bool
	}
	mapper := iter.Mapper[league.League, lookup]{MaxGoroutines: weeklyWinnerLookupWorkers}
	rows, err := mapper.MapErr(leagues, func(item *league.League) (lookup, error) {
		winner, found, err := s.leagueWinner(ctx, *item, week)
		return lookup{winner: winner, found: found}, err
	})
	if err != nil {
		return WeeklyWinners{}, err
	}

	out := WeeklyWinners{Week: week, Winners: make([]WeeklyWinner, 0, len(rows))}
	for _, row := range rows {
		if row.found {
			out.Winners = append(out.Winners, row.winner)
		}
	}
	return out, nil
}

func (s *WeeklyWinnerService) leagueWinner(ctx context.Context, item league.League, week int) (WeeklyWinner, bool, error) {
	top, exists, err := s.scoreRepo.TopForLeagueWeek(ctx, item.ID, week, item.Season)
	if err != nil {
		return WeeklyWinner{}, false, fmt.Errorf("get top score league_id=%d week=%d: %w", item.ID, week, err)
	}
	if !exists {
		s.logger.DebugContext(ctx, "no scores for league week", "league_id", item.ID, "week", week)
		return WeeklyWinner{}, false, nil
	}

	winner := WeeklyWinner{
		LeagueID:   item.ID,
		LeagueName: item.Name,
		Season:     top.Score.Season,
		TeamID:     top.Score.TeamID,
		TeamName:   top.TeamName,
		OwnerID:    top.OwnerID,
		OwnerName:  unownedWinnerName,
		Points:     top.Score.PointsScored,
	}
	if top.OwnerID == nil {
		return winner, true, nil
	}

	owner, exists, err := s.memberRepo.GetByID(ctx, *top.OwnerID)
	if err != nil {
		return WeeklyWinner{}, false, fmt.Errorf("get winner member_id=%d: %w", *top.OwnerID, err)
	}
	if exists {
		winner.OwnerName = owner.DisplayName()
		winner.PaymentInfo = owner.PaymentInfo
	}
	return winner, true, nil
}

// Post announces the winners of week and optionally records their payouts.
// Nothing is posted when no league has scores for the week.
func (s *WeeklyWinnerService) Post(ctx context.Context, input PostWinnersInput) (PostWinnersResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyWinnerService.Post", attribute.Int("week", input.Week))
	defer span.End()

	if input.Week <= 0 {
		return PostWinnersResult{}, fmt.Errorf("%w: week is required", ErrInvalidInput)
	}

	winners, err := s.Winners(ctx, input.Week)
	if err != nil {
		return PostWinnersResult{}, err
	}
	result := PostWinnersResult{Week: input.Week, Winners: winners.Winners}
	if len(winners.Winners) == 0 {
		s.logger.WarnContext(ctx, "no winners found for any league, nothing to post", "week", input.Week)
		return result, nil
	}

	if input.RecordPayouts {
		recorded, err := s.recordPayouts(ctx, input.Week, winners.Winners)
		result.PayoutsRecorded = recorded
		if err != nil {
			return result, err
		}
	}

	result.Message = FormatWinnersMessage(input.Week, winners.Winners, s.rules.WeeklyPayoutAmount)
	if s.notifier == nil {
		return result, fmt.Errorf("%w: payout notifier is not configured", ErrDependencyUnavailable)
	}
	if err := s.notifier.PostMessage(ctx, result.Message); err != nil {
		s.logger.ErrorContext(ctx, "post weekly winners failed", "week", input.Week, "error", err)
		return result, fmt.Errorf("post weekly winners: %w", err)
	}
	result.Posted = true
	return result, nil
}

func (s *WeeklyWinnerService) recordPayouts(ctx context.Context, week int, winners []WeeklyWinner) (int, error) {
	recorded := 0
	for _, winner := range winners {
		if winner.OwnerID == nil {
			s.logger.WarnContext(ctx, "weekly winner has no owner, payout skipped", "team_id", winner.TeamID)
			continue
		}
		recipient := *winner.OwnerID
		if _, err := s.payoutRepo.Upsert(ctx, payout.Payout{
			RecipientID: &recipient,
			Amount:      s.rules.WeeklyPayoutAmount,
			Reason:      payout.WeeklyWinnerReason(week),
			Season:      winner.Season,
		}); err != nil {
			return recorded, fmt.Errorf("record payout member_id=%d: %w", recipient, err)
		}
		recorded++
	}
	return recorded, nil
}

// FormatWinnersMessage renders the Discord announcement for week.
func FormatWinnersMessage(week int, winners []WeeklyWinner, amount float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 **Weekly High Score Payouts for Week %d** 🎉\n\n", week)
	for i, w := range winners {
		if i > 0 {
			b.WriteString("\n")
		}
		venmo := "(Venmo not on file)"
		if handle := strings.TrimSpace(w.PaymentInfo); handle != "" {
			venmo = "**Venmo:** " + handle
		}
		fmt.Fprintf(&b, "🏆 **%s**\n", w.LeagueName)
		fmt.Fprintf(&b, "   **Winner:** %s\n", w.OwnerName)
		fmt.Fprintf(&b, "   **Team:** %s\n", w.TeamName)
		fmt.Fprintf(&b, "   **Score:** %.2f\n", w.Points)
		fmt.Fprintf(&b, "   %s\n", venmo)
	}
	fmt.Fprintf(&b, "\n*Commissioners, please send out the $%s payouts.*", strconv.FormatFloat(amount, 'f', -1, 64))
	return b.String()
}
