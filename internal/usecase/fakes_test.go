package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type fakeSource struct {
	mu sync.Mutex

	state    ExternalNFLState
	stateErr error

	leagues    map[string]ExternalLeague
	leagueErr  map[string]error
	users      map[string][]ExternalUser
	rosters    map[string][]ExternalRoster
	matchups   map[string]map[int][]ExternalMatchup
	brackets   map[string][]ExternalBracketMatch
	bracketErr map[string]error

	players    map[string]ExternalPlayer
	playersErr error
	weekly     map[string][]float64
	weeklyErr  map[string]error

	matchupWeeks  map[string][]int
	bracketCalls  int
	statsRequests []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		state:        ExternalNFLState{Week: 10, Season: 2025},
		leagues:      make(map[string]ExternalLeague),
		leagueErr:    make(map[string]error),
		users:        make(map[string][]ExternalUser),
		rosters:      make(map[string][]ExternalRoster),
		matchups:     make(map[string]map[int][]ExternalMatchup),
		brackets:     make(map[string][]ExternalBracketMatch),
		bracketErr:   make(map[string]error),
		players:      make(map[string]ExternalPlayer),
		weekly:       make(map[string][]float64),
		weeklyErr:    make(map[string]error),
		matchupWeeks: make(map[string][]int),
	}
}

func (f *fakeSource) FetchNFLState(_ context.Context) (ExternalNFLState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.stateErr
}

func (f *fakeSource) FetchLeague(_ context.Context, leagueID string) (ExternalLeague, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.leagueErr[leagueID]; err != nil {
		return ExternalLeague{}, err
	}
	item, ok := f.leagues[leagueID]
	if !ok {
		return ExternalLeague{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	return item, nil
}

func (f *fakeSource) FetchUsers(_ context.Context, leagueID string) ([]ExternalUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[leagueID], nil
}

func (f *fakeSource) FetchRosters(_ context.Context, leagueID string) ([]ExternalRoster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rosters[leagueID], nil
}

func (f *fakeSource) FetchMatchups(_ context.Context, leagueID string, week int) ([]ExternalMatchup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchupWeeks[leagueID] = append(f.matchupWeeks[leagueID], week)
	return f.matchups[leagueID][week], nil
}

func (f *fakeSource) FetchWinnersBracket(_ context.Context, leagueID string) ([]ExternalBracketMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bracketCalls++
	if err := f.bracketErr[leagueID]; err != nil {
		return nil, err
	}
	bracket, ok := f.brackets[leagueID]
	if !ok {
		return nil, fmt.Errorf("%w: bracket %s", ErrNotFound, leagueID)
	}
	return bracket, nil
}

func (f *fakeSource) FetchPlayers(_ context.Context) (map[string]ExternalPlayer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playersErr != nil {
		return nil, f.playersErr
	}
	return f.players, nil
}

func (f *fakeSource) FetchPlayerWeeklyPoints(_ context.Context, playerID string, _ int) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsRequests = append(f.statsRequests, playerID)
	if err := f.weeklyErr[playerID]; err != nil {
		return nil, err
	}
	return f.weekly[playerID], nil
}

func (f *fakeSource) addMatchups(leagueID string, week int, items ...ExternalMatchup) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.matchups[leagueID] == nil {
		f.matchups[leagueID] = make(map[int][]ExternalMatchup)
	}
	f.matchups[leagueID][week] = items
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (n *fakeNotifier) PostMessage(_ context.Context, content string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, content)
	return nil
}

// testBackend wires every memory repository over one store.
type testBackend struct {
	leagues  *memory.LeagueRepository
	members  *memory.MemberRepository
	users    *memory.UserRepository
	teams    *memory.TeamRepository
	scores   *memory.WeeklyScoreRepository
	playoffs *memory.PlayoffRepository
	payouts  *memory.PayoutRepository
	common   *memory.CommonPlayerRepository
	jobRuns  *memory.JobRunRepository
	locker   *memory.Locker
}

func newTestBackend() *testBackend {
	store := memory.NewStore()
	return &testBackend{
		leagues:  memory.NewLeagueRepository(store),
		members:  memory.NewMemberRepository(store),
		users:    memory.NewUserRepository(store),
		teams:    memory.NewTeamRepository(store),
		scores:   memory.NewWeeklyScoreRepository(store),
		playoffs: memory.NewPlayoffRepository(store),
		payouts:  memory.NewPayoutRepository(store),
		common:   memory.NewCommonPlayerRepository(store),
		jobRuns:  memory.NewJobRunRepository(store),
		locker:   memory.NewLocker(),
	}
}

func (b *testBackend) newSyncService(source LeagueSource, rules SeasonRules) *SyncService {
	logger := logging.NewNop()
	return NewSyncService(
		source,
		b.leagues,
		NewIdentityReconciler(b.members, b.users, logger),
		NewRosterReconciler(b.members, b.teams, logger),
		NewScoreIngestion(source, b.teams, b.scores, rules, logger),
		NewPlayoffLatch(source, b.playoffs, b.teams, rules, logger),
		NewCommonPlayerAggregator(source, b.teams, b.common, rules, logger),
		b.locker,
		logger,
	)
}

func (b *testBackend) newTournamentService(rules SeasonRules) *TournamentService {
	return NewTournamentService(b.leagues, b.teams, b.scores, b.playoffs, b.locker, rules, logging.NewNop())
}

func mustCreateLeague(ctx context.Context, b *testBackend, sleeperID, name string, season int) league.League {
	item, err := b.leagues.Create(ctx, league.League{Name: name, SleeperLeagueID: sleeperID, Season: season})
	if err != nil {
		panic(fmt.Sprintf("create league: %v", err))
	}
	return item
}
