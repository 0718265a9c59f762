package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
)

const syncLeagueID = "1180208789912768512"

func seedSyncSource() *fakeSource {
	source := newFakeSource()
	source.leagues[syncLeagueID] = ExternalLeague{LeagueID: syncLeagueID, Name: "Sunday Funday", Season: 2025}
	source.users[syncLeagueID] = []ExternalUser{
		{UserID: "u1", DisplayName: "Alice", CustomTeamName: "Alice's Aces"},
		{UserID: "u2", DisplayName: "Bob"},
		{UserID: "u3"},
		{DisplayName: "Nobody"},
	}
	source.rosters[syncLeagueID] = []ExternalRoster{
		{RosterID: 1, OwnerID: "u1", TeamName: "Roster One", PlayerIDs: []string{"4046", "KC"}, Wins: 9, Losses: 4, PointsFor: 1734.48},
		{RosterID: 2, OwnerID: "u2", TeamName: "Bobcats", PlayerIDs: []string{"4046", "6794"}, Wins: 9, Losses: 3, Ties: 1, PointsFor: 1650},
		{RosterID: 3, OwnerID: "u3", PlayerIDs: []string{"1466"}, Wins: 2, Losses: 11},
		{RosterID: 4, OwnerID: "ghost", Wins: 5, Losses: 8},
		{RosterID: 0, OwnerID: "u1"},
	}
	source.addMatchups(syncLeagueID, 1,
		ExternalMatchup{RosterID: 1, Points: 121.38, PlayersPoints: map[string]float64{"4046": 30.5, "KC": 8}},
		ExternalMatchup{RosterID: 2, Points: 99.1},
		ExternalMatchup{RosterID: 3, Points: 80},
		ExternalMatchup{RosterID: 9, Points: 70},
	)
	source.addMatchups(syncLeagueID, 2,
		ExternalMatchup{RosterID: 1, Points: 101, PlayersPoints: map[string]float64{"4046": 10, "KC": 12}},
		ExternalMatchup{RosterID: 2, Points: 140.2},
	)
	source.brackets[syncLeagueID] = []ExternalBracketMatch{{Round: 1, Match: 1, Team1: 1, Team2: 2}}
	source.players = map[string]ExternalPlayer{
		"4046": {PlayerID: "4046", FirstName: "Patrick", LastName: "Mahomes", Position: "QB", Team: "KC"},
		"6794": {PlayerID: "6794", FirstName: "Justin", LastName: "Jefferson", Position: "WR", Team: "MIN"},
		"KC":   {PlayerID: "KC", FirstName: "Kansas City", LastName: "Chiefs", Position: "DEF", Team: "KC"},
	}
	source.weekly["4046"] = []float64{20, 0, 30}
	source.weekly["6794"] = []float64{10}
	return source
}

func TestSyncService_Run_MirrorsLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	item := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()

	result, err := backend.newSyncService(source, SeasonRules{}).Run(ctx)
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.SuccessCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected league outcome: %+v", result)
	}

	members, err := backend.members.List(ctx)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %+v", members)
	}
	if members[2].FullName != "SleeperUser" || members[2].Username != "SleeperUser" {
		t.Fatalf("expected default display name, got %+v", members[2])
	}

	teams, err := backend.teams.List(ctx, team.ListFilter{LeagueID: item.ID})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	wantNames := []string{"Alice's Aces", "Bobcats", "Team SleeperUser", team.UnsetTeamName}
	if len(teams) != len(wantNames) {
		t.Fatalf("expected %d teams, got %+v", len(wantNames), teams)
	}
	for i, want := range wantNames {
		if teams[i].TeamName != want {
			t.Fatalf("team %d name = %q, want %q", i, teams[i].TeamName, want)
		}
	}
	if teams[3].OwnerID != nil {
		t.Fatalf("expected unknown owner to stay null, got %v", *teams[3].OwnerID)
	}
	if teams[0].PointsFor != 1734.48 || teams[1].Ties != 1 {
		t.Fatalf("unexpected standings: %+v", teams[:2])
	}

	if weeks := source.matchupWeeks[syncLeagueID]; len(weeks) != 3 || weeks[2] != 3 {
		t.Fatalf("expected the walk to stop at the first empty week, got %v", weeks)
	}
	scores, err := backend.scores.List(ctx, weeklyscore.Filter{LeagueID: item.ID})
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("expected 5 weekly scores, got %+v", scores)
	}

	top := teams[0].TopPlayers
	if len(top) != 2 || top[0].PlayerID != "4046" || top[0].TotalPoints != 40.5 || top[0].Name != "Patrick Mahomes" {
		t.Fatalf("unexpected top players: %+v", top)
	}
	if top[0].AvatarURL != "https://sleepercdn.com/content/nfl/players/thumb/4046.jpg" {
		t.Fatalf("unexpected avatar url %q", top[0].AvatarURL)
	}
	if len(teams[1].TopPlayers) != 0 {
		t.Fatalf("expected no top players without breakdowns, got %+v", teams[1].TopPlayers)
	}

	if result.Leagues[0].Latch.Action != LatchActionReset {
		t.Fatalf("expected flags reset before the playoffs, got %+v", result.Leagues[0].Latch)
	}

	common, err := backend.common.List(ctx)
	if err != nil {
		t.Fatalf("list common players: %v", err)
	}
	if len(common) != 2 || common[0].PlayerID != "4046" || common[0].AverageScore != 25 || common[1].PlayerID != "6794" {
		t.Fatalf("unexpected common players: %+v", common)
	}
}

func TestSyncService_Run_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	item := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()
	service := backend.newSyncService(source, SeasonRules{})

	for i := 0; i < 2; i++ {
		if _, err := service.Run(ctx); err != nil {
			t.Fatalf("run sync %d: %v", i, err)
		}
	}

	members, _ := backend.members.List(ctx)
	teams, _ := backend.teams.List(ctx, team.ListFilter{LeagueID: item.ID})
	scores, _ := backend.scores.List(ctx, weeklyscore.Filter{LeagueID: item.ID})
	if len(members) != 3 || len(teams) != 4 || len(scores) != 5 {
		t.Fatalf("expected no duplicates, got members=%d teams=%d scores=%d", len(members), len(teams), len(scores))
	}
}

func TestSyncService_Run_RenamesOnlyToFreeHandles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()
	service := backend.newSyncService(source, SeasonRules{})

	if _, err := service.Run(ctx); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	source.users[syncLeagueID] = []ExternalUser{
		{UserID: "u1", DisplayName: "Alicia"},
		{UserID: "u2", DisplayName: "SleeperUser"},
		{UserID: "u4", DisplayName: "Alicia"},
	}
	if _, err := service.Run(ctx); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	members, _ := backend.members.List(ctx)
	bySleeper := make(map[string]string, len(members))
	for _, m := range members {
		bySleeper[m.SleeperID] = m.Username + "|" + m.FullName
	}
	want := map[string]string{
		"u1": "Alicia|Alicia",
		"u2": "Bob|SleeperUser",
		"u3": "SleeperUser|SleeperUser",
		"u4": "Alicia_1|Alicia",
	}
	for id, w := range want {
		if bySleeper[id] != w {
			t.Fatalf("member %s = %q, want %q", id, bySleeper[id], w)
		}
	}
}

func TestSyncService_Run_IsolatesLeagueFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	mustCreateLeague(ctx, backend, "broken", "Broken League", 2025)
	healthy := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()
	source.leagueErr["broken"] = errors.New("upstream 500")

	result, err := backend.newSyncService(source, SeasonRules{}).Run(ctx)
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.FailedCount != 1 || result.SuccessCount != 1 {
		t.Fatalf("unexpected outcome: %+v", result)
	}
	if result.Leagues[0].Status != leagueSyncStatusFailed || result.Leagues[0].Message == "" {
		t.Fatalf("expected the broken league to be reported, got %+v", result.Leagues[0])
	}
	teams, _ := backend.teams.List(ctx, team.ListFilter{LeagueID: healthy.ID})
	if len(teams) != 4 {
		t.Fatalf("expected the healthy league to sync, got %d teams", len(teams))
	}
}

func TestSyncService_Run_GlobalStateFailureIsFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	item := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()
	source.stateErr = errors.New("state unavailable")

	if _, err := backend.newSyncService(source, SeasonRules{}).Run(ctx); err == nil {
		t.Fatalf("expected global state failure to abort the pass")
	}
	teams, _ := backend.teams.List(ctx, team.ListFilter{LeagueID: item.ID})
	if len(teams) != 0 {
		t.Fatalf("expected no writes, got %d teams", len(teams))
	}
}

func TestSyncService_Run_RejectsConcurrentPass(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	release, ok, err := backend.locker.TryLock(ctx, PassLockKey)
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	defer release()

	_, err = backend.newSyncService(seedSyncSource(), SeasonRules{}).Run(ctx)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSyncService_Run_LatchedLeagueKeepsFlags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	item := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2025)
	source := seedSyncSource()
	source.state = ExternalNFLState{Week: 15, Season: 2025}
	service := backend.newSyncService(source, SeasonRules{})

	if _, err := service.Run(ctx); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if _, err := backend.newTournamentService(SeasonRules{}).Start(ctx); err != nil {
		t.Fatalf("start tournament: %v", err)
	}

	source.brackets[syncLeagueID] = []ExternalBracketMatch{{Round: 1, Match: 1, Team1: 3, Team2: 4}}
	result, err := service.Run(ctx)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Leagues[0].Latch.State != playoff.Latched || result.Leagues[0].Latch.Action != LatchActionFrozen {
		t.Fatalf("expected latched league, got %+v", result.Leagues[0].Latch)
	}

	flagged, _ := backend.teams.List(ctx, team.ListFilter{LeagueID: item.ID, PlayoffsOnly: true})
	if len(flagged) != 2 || flagged[0].SleeperRosterID != 1 || flagged[1].SleeperRosterID != 2 {
		t.Fatalf("expected the original playoff teams to stay flagged, got %+v", flagged)
	}
}

func TestSyncService_Run_AdoptsSleeperSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newTestBackend()
	item := mustCreateLeague(ctx, backend, syncLeagueID, "Sunday Funday", 2024)

	result, err := backend.newSyncService(seedSyncSource(), SeasonRules{}).Run(ctx)
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if result.Leagues[0].Season != 2025 {
		t.Fatalf("expected the sleeper season on the result, got %d", result.Leagues[0].Season)
	}

	stored, ok, err := backend.leagues.GetByID(ctx, item.ID)
	if err != nil || !ok {
		t.Fatalf("get league: ok=%v err=%v", ok, err)
	}
	if stored.Season != 2025 {
		t.Fatalf("stored season=%d want=2025", stored.Season)
	}

	winners, err := backend.newWeeklyWinnerService(nil).Winners(ctx, 1)
	if err != nil {
		t.Fatalf("winners: %v", err)
	}
	if len(winners.Winners) != 1 || winners.Winners[0].Points != 121.38 {
		t.Fatalf("expected the week 1 winner under the synced season, got %+v", winners)
	}
}
