package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

func seedLatchTeams(t *testing.T, backend *testBackend, leagueID int64, flagged ...int) {
	t.Helper()

	ctx := context.Background()
	for roster := 1; roster <= 4; roster++ {
		if _, err := backend.teams.UpsertStanding(ctx, team.Standing{
			LeagueID:        leagueID,
			SleeperRosterID: roster,
			TeamName:        fmt.Sprintf("Team %d", roster),
		}); err != nil {
			t.Fatalf("upsert standing: %v", err)
		}
	}
	if len(flagged) > 0 {
		if err := backend.teams.MarkPlayoffTeams(ctx, leagueID, flagged); err != nil {
			t.Fatalf("mark playoff teams: %v", err)
		}
	}
}

func flaggedRosters(t *testing.T, backend *testBackend, leagueID int64) []int {
	t.Helper()

	teams, err := backend.teams.List(context.Background(), team.ListFilter{LeagueID: leagueID, PlayoffsOnly: true})
	if err != nil {
		t.Fatalf("list flagged teams: %v", err)
	}
	out := make([]int, 0, len(teams))
	for _, item := range teams {
		out = append(out, item.SleeperRosterID)
	}
	return out
}

func TestPlayoffLatch_Apply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		week       int
		bracket    []ExternalBracketMatch
		bracketErr error
		latched    bool
		wantAction LatchAction
		wantFlags  []int
		wantErr    bool
	}{
		{name: "regular season resets", week: 10, wantAction: LatchActionReset, wantFlags: []int{}},
		{
			name:       "bracket marks t1 and t2",
			week:       15,
			bracket:    []ExternalBracketMatch{{Team1: 3, Team2: 4}, {Team1: 4, Team2: 0}},
			wantAction: LatchActionMarked,
			wantFlags:  []int{3, 4},
		},
		{name: "bracket 404 keeps flags", week: 16, bracketErr: fmt.Errorf("bracket: %w", ErrNotFound), wantAction: LatchActionNoData, wantFlags: []int{1, 2}},
		{name: "empty bracket keeps flags", week: 16, bracket: []ExternalBracketMatch{}, wantAction: LatchActionNoData, wantFlags: []int{1, 2}},
		{name: "latched league is frozen", week: 16, latched: true, bracket: []ExternalBracketMatch{{Team1: 3}}, wantAction: LatchActionFrozen, wantFlags: []int{1, 2}},
		{name: "latched league ignores regular season", week: 3, latched: true, wantAction: LatchActionFrozen, wantFlags: []int{1, 2}},
		{name: "other bracket errors fail", week: 15, bracketErr: errors.New("upstream 502"), wantErr: true, wantFlags: []int{1, 2}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			backend := newTestBackend()
			item := mustCreateLeague(ctx, backend, "L1", "League", 2025)
			seedLatchTeams(t, backend, item.ID, 1, 2)

			if tc.latched {
				flagged, _ := backend.teams.List(ctx, team.ListFilter{LeagueID: item.ID, PlayoffsOnly: true})
				if _, _, err := backend.playoffs.GetOrCreate(ctx, playoff.Key{TeamID: flagged[0].ID, Season: 2025, Week: 15}); err != nil {
					t.Fatalf("create entry: %v", err)
				}
			}

			source := newFakeSource()
			if tc.bracket != nil {
				source.brackets["L1"] = tc.bracket
			}
			if tc.bracketErr != nil {
				source.bracketErr["L1"] = tc.bracketErr
			}

			latch := NewPlayoffLatch(source, backend.playoffs, backend.teams, SeasonRules{}, logging.NewNop())
			result, err := latch.Apply(ctx, LatchInput{LeagueID: item.ID, SleeperLeagueID: "L1", Season: 2025, CurrentWeek: tc.week})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
			} else {
				if err != nil {
					t.Fatalf("apply latch: %v", err)
				}
				if result.Action != tc.wantAction {
					t.Fatalf("action = %s, want %s", result.Action, tc.wantAction)
				}
			}
			if tc.latched && source.bracketCalls != 0 {
				t.Fatalf("latched league must not read the bracket")
			}

			got := flaggedRosters(t, backend, item.ID)
			if len(got) != len(tc.wantFlags) {
				t.Fatalf("flags = %v, want %v", got, tc.wantFlags)
			}
			for i := range got {
				if got[i] != tc.wantFlags[i] {
					t.Fatalf("flags = %v, want %v", got, tc.wantFlags)
				}
			}
		})
	}
}

func TestBracketRosterIDs_DistinctInOrder(t *testing.T) {
	t.Parallel()

	got := bracketRosterIDs([]ExternalBracketMatch{{Team1: 5, Team2: 2}, {Team1: 2, Team2: 0}, {Team1: 7, Team2: 5}})
	want := []int{5, 2, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
