package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	weeklyscoremock "github.com/riskibarqy/sleeper-league/internal/mocks/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestFormatWinnersMessage(t *testing.T) {
	t.Parallel()

	ownerID := int64(1)
	got := FormatWinnersMessage(7, []WeeklyWinner{
		{LeagueName: "Alpha", OwnerID: &ownerID, OwnerName: "Alice", TeamName: "Gridiron Gang", PaymentInfo: "@alice", Points: 151.456},
		{LeagueName: "Beta", OwnerName: "(no owner)", TeamName: "Team Name Not Set", Points: 99},
	}, 5)

	want := "🎉 **Weekly High Score Payouts for Week 7** 🎉\n\n" +
		"🏆 **Alpha**\n" +
		"   **Winner:** Alice\n" +
		"   **Team:** Gridiron Gang\n" +
		"   **Score:** 151.46\n" +
		"   **Venmo:** @alice\n" +
		"\n" +
		"🏆 **Beta**\n" +
		"   **Winner:** (no owner)\n" +
		"   **Team:** Team Name Not Set\n" +
		"   **Score:** 99.00\n" +
		"   (Venmo not on file)\n" +
		"\n*Commissioners, please send out the $5 payouts.*"
	if got != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", got, want)
	}
}

// seedWinners creates two leagues with week 3 scores in the first only.
func seedWinners(t *testing.T, backend *testBackend) (member.Member, int64) {
	t.Helper()

	ctx := context.Background()
	alice, err := backend.members.Create(ctx, member.NewMember{Username: "alice", FullName: "Alice", SleeperID: "u1"})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if _, _, err := backend.members.UpdatePaymentInfo(ctx, alice.ID, "@alice"); err != nil {
		t.Fatalf("update payment info: %v", err)
	}

	alpha := mustCreateLeague(ctx, backend, "L1", "Alpha", 2025)
	mustCreateLeague(ctx, backend, "L2", "Beta", 2025)

	owned, err := backend.teams.UpsertStanding(ctx, team.Standing{LeagueID: alpha.ID, SleeperRosterID: 1, OwnerID: &alice.ID, TeamName: "Gridiron Gang"})
	if err != nil {
		t.Fatalf("upsert team: %v", err)
	}
	other, err := backend.teams.UpsertStanding(ctx, team.Standing{LeagueID: alpha.ID, SleeperRosterID: 2, TeamName: "Benchwarmers"})
	if err != nil {
		t.Fatalf("upsert team: %v", err)
	}
	for _, score := range []weeklyscore.WeeklyScore{
		{TeamID: owned.ID, Week: 3, Season: 2025, PointsScored: 131.2},
		{TeamID: other.ID, Week: 3, Season: 2025, PointsScored: 88},
		{TeamID: other.ID, Week: 3, Season: 2024, PointsScored: 200},
	} {
		if err := backend.scores.Upsert(ctx, score); err != nil {
			t.Fatalf("upsert score: %v", err)
		}
	}
	return alice, owned.ID
}

func (b *testBackend) newWeeklyWinnerService(notifier PayoutNotifier) *WeeklyWinnerService {
	return NewWeeklyWinnerService(b.leagues, b.members, b.scores, b.payouts, notifier, SeasonRules{}, logging.NewNop())
}

func TestWeeklyWinnerService_Winners_SkipsLeaguesWithoutScores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	alice, teamID := seedWinners(t, backend)
	service := backend.newWeeklyWinnerService(nil)

	got, err := service.Winners(ctx, 3)
	if err != nil {
		t.Fatalf("winners: %v", err)
	}
	if got.Week != 3 || len(got.Winners) != 1 {
		t.Fatalf("unexpected winners: %+v", got)
	}
	winner := got.Winners[0]
	if winner.TeamID != teamID || winner.OwnerName != alice.FullName || winner.PaymentInfo != "@alice" || winner.Points != 131.2 {
		t.Fatalf("unexpected winner: %+v", winner)
	}
}

func TestWeeklyWinnerService_Winners_LatestWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	seedWinners(t, backend)
	service := backend.newWeeklyWinnerService(nil)

	got, err := service.Winners(ctx, 0)
	if err != nil {
		t.Fatalf("winners: %v", err)
	}
	if got.Week != 3 {
		t.Fatalf("expected latest week 3, got %d", got.Week)
	}
}

func TestWeeklyWinnerService_Winners_NoScoresUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scoreRepo := weeklyscoremock.NewRepository(t)
	service := NewWeeklyWinnerService(nil, nil, scoreRepo, nil, nil, SeasonRules{}, logging.NewNop())

	scoreRepo.On("LatestWeek", ctx).Return(0, false, nil).Once()

	got, err := service.Winners(ctx, 0)
	if err != nil {
		t.Fatalf("winners: %v", err)
	}
	if len(got.Winners) != 0 {
		t.Fatalf("expected no winners, got %+v", got)
	}
	scoreRepo.AssertNotCalled(t, "TopForLeagueWeek", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWeeklyWinnerService_Post_RecordsPayoutsAndPosts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	alice, _ := seedWinners(t, backend)
	notifier := &fakeNotifier{}
	service := backend.newWeeklyWinnerService(notifier)

	for i := 0; i < 2; i++ {
		result, err := service.Post(ctx, PostWinnersInput{Week: 3, RecordPayouts: true})
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		if !result.Posted || result.PayoutsRecorded != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
	}

	if len(notifier.messages) != 2 {
		t.Fatalf("expected two posts, got %d", len(notifier.messages))
	}
	payouts, _ := backend.payouts.List(ctx, payout.Filter{RecipientID: alice.ID})
	if len(payouts) != 1 {
		t.Fatalf("expected one payout after repeated posts, got %+v", payouts)
	}
	if payouts[0].Reason != "Weekly Winner Week 3" || payouts[0].Amount != 5 || payouts[0].Season != 2025 {
		t.Fatalf("unexpected payout: %+v", payouts[0])
	}
}

func TestWeeklyWinnerService_Post_NothingToPost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	seedWinners(t, backend)
	notifier := &fakeNotifier{}
	service := backend.newWeeklyWinnerService(notifier)

	result, err := service.Post(ctx, PostWinnersInput{Week: 9})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if result.Posted || len(notifier.messages) != 0 {
		t.Fatalf("expected nothing posted: %+v", result)
	}
}

func TestWeeklyWinnerService_Post_Failures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("notifier error", func(t *testing.T) {
		backend := newTestBackend()
		seedWinners(t, backend)
		boom := errors.New("webhook 500")
		service := backend.newWeeklyWinnerService(&fakeNotifier{err: boom})

		result, err := service.Post(ctx, PostWinnersInput{Week: 3})
		if !errors.Is(err, boom) {
			t.Fatalf("expected notifier error, got %v", err)
		}
		if result.Posted || result.Message == "" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("notifier missing", func(t *testing.T) {
		backend := newTestBackend()
		seedWinners(t, backend)
		service := backend.newWeeklyWinnerService(nil)

		if _, err := service.Post(ctx, PostWinnersInput{Week: 3}); !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})

	t.Run("week required", func(t *testing.T) {
		service := newTestBackend().newWeeklyWinnerService(nil)
		if _, err := service.Post(ctx, PostWinnersInput{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
