package sleeper

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

//go:embed testdata
var testdata embed.FS

const testLeagueID = "1180208789912768512"

type fakeSleeper struct {
	server       *httptest.Server
	playersCalls atomic.Int32
	stateStatus  atomic.Int32
}

func newFakeSleeper(t *testing.T) *fakeSleeper {
	t.Helper()

	f := &fakeSleeper{}
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", func(w http.ResponseWriter, _ *http.Request) {
			if code := int(f.stateStatus.Load()); code != 0 {
				w.WriteHeader(code)
				return
			}
			serveFixture(t, w, "state_nfl.json")
		})
		r.Get("/players/nfl", func(w http.ResponseWriter, _ *http.Request) {
			f.playersCalls.Add(1)
			serveFixture(t, w, "players.json")
		})
		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Use(knownLeagueOnly)
			r.Get("/", func(w http.ResponseWriter, _ *http.Request) { serveFixture(t, w, "league.json") })
			r.Get("/users", func(w http.ResponseWriter, _ *http.Request) { serveFixture(t, w, "users.json") })
			r.Get("/rosters", func(w http.ResponseWriter, _ *http.Request) { serveFixture(t, w, "rosters.json") })
			r.Get("/winners_bracket", func(w http.ResponseWriter, _ *http.Request) {
				serveFixture(t, w, "winners_bracket.json")
			})
			r.Get("/matchups/{week}", func(w http.ResponseWriter, r *http.Request) {
				if chi.URLParam(r, "week") == "1" {
					serveFixture(t, w, "matchups_1.json")
					return
				}
				_, _ = w.Write([]byte("[]"))
			})
		})
	})
	r.Get("/stats/nfl/player/{playerID}", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("season_type") != "regular" || q.Get("grouping") != "week" || q.Get("season") != "2025" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if chi.URLParam(r, "playerID") != "4046" {
			_, _ = w.Write([]byte("{}"))
			return
		}
		serveFixture(t, w, "stats_4046.json")
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func knownLeagueOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") != testLeagueID {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func serveFixture(t *testing.T, w http.ResponseWriter, name string) {
	b, err := testdata.ReadFile("testdata/" + name)
	if err != nil {
		t.Errorf("read fixture %s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func newTestClient(f *fakeSleeper, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		BaseURL:        f.server.URL + "/v1",
		StatsBaseURL:   f.server.URL,
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchNFLState_FallsBackToDisplayWeek(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	state, err := client.FetchNFLState(context.Background())
	if err != nil {
		t.Fatalf("fetch nfl state: %v", err)
	}
	if state.Week != 16 || state.Season != 2025 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestClient_FetchLeagueUsersAndRosters(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	ctx := context.Background()

	meta, err := client.FetchLeague(ctx, testLeagueID)
	if err != nil {
		t.Fatalf("fetch league: %v", err)
	}
	if meta.Season != 2025 || meta.Name != "Sunday Funday" {
		t.Fatalf("unexpected league: %+v", meta)
	}

	users, err := client.FetchUsers(ctx, testLeagueID)
	if err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].CustomTeamName != "Greg's Goats" || users[1].CustomTeamName != "" || users[2].CustomTeamName != "" {
		t.Fatalf("unexpected custom team names: %+v", users)
	}

	rosters, err := client.FetchRosters(ctx, testLeagueID)
	if err != nil {
		t.Fatalf("fetch rosters: %v", err)
	}
	if len(rosters) != 3 {
		t.Fatalf("expected 3 rosters, got %d", len(rosters))
	}
	first := rosters[0]
	if first.PointsFor != 1734.48 || first.Wins != 10 || first.TeamName != "Roster One" || len(first.PlayerIDs) != 3 {
		t.Fatalf("unexpected first roster: %+v", first)
	}
	if rosters[1].PointsFor != 1599 || rosters[1].Ties != 1 {
		t.Fatalf("unexpected second roster: %+v", rosters[1])
	}
	if rosters[2].OwnerID != "" || len(rosters[2].PlayerIDs) != 0 {
		t.Fatalf("unexpected ownerless roster: %+v", rosters[2])
	}
}

func TestClient_FetchMatchups(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	ctx := context.Background()

	week1, err := client.FetchMatchups(ctx, testLeagueID, 1)
	if err != nil {
		t.Fatalf("fetch matchups: %v", err)
	}
	if len(week1) != 2 || week1[0].Points != 121.38 || week1[0].PlayersPoints["4046"] != 30.5 {
		t.Fatalf("unexpected week 1 matchups: %+v", week1)
	}

	week2, err := client.FetchMatchups(ctx, testLeagueID, 2)
	if err != nil {
		t.Fatalf("fetch matchups week 2: %v", err)
	}
	if len(week2) != 0 {
		t.Fatalf("expected empty week 2, got %+v", week2)
	}

	if _, err := client.FetchMatchups(ctx, testLeagueID, 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 0, got %v", err)
	}
}

func TestClient_FetchWinnersBracket(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	bracket, err := client.FetchWinnersBracket(context.Background(), testLeagueID)
	if err != nil {
		t.Fatalf("fetch bracket: %v", err)
	}
	if len(bracket) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(bracket))
	}
	if bracket[2].Team1 != 1 || bracket[2].Team2 != 0 {
		t.Fatalf("expected undecided slot to map to zero: %+v", bracket[2])
	}
}

func TestClient_FetchWinnersBracket_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	_, err := client.FetchWinnersBracket(context.Background(), "unknown-league")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchPlayers_CachesDirectory(t *testing.T) {
	t.Parallel()

	fake := newFakeSleeper(t)
	client := newTestClient(fake, resilience.CircuitBreakerConfig{})
	ctx := context.Background()

	players, err := client.FetchPlayers(ctx)
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	if players["4046"].FullName() != "Patrick Mahomes" || players["KC"].Position != "DEF" {
		t.Fatalf("unexpected players: %+v", players)
	}
	if players["1466"].Team != "" {
		t.Fatalf("expected null team to decode as empty, got %q", players["1466"].Team)
	}
	if _, err := client.FetchPlayers(ctx); err != nil {
		t.Fatalf("second fetch players: %v", err)
	}
	if got := fake.playersCalls.Load(); got != 1 {
		t.Fatalf("expected one upstream players call, got %d", got)
	}
}

func TestClient_FetchPlayerWeeklyPoints(t *testing.T) {
	t.Parallel()

	client := newTestClient(newFakeSleeper(t), resilience.CircuitBreakerConfig{})
	points, err := client.FetchPlayerWeeklyPoints(context.Background(), "4046", 2025)
	if err != nil {
		t.Fatalf("fetch weekly points: %v", err)
	}
	want := []float64{24.5, 18.1, 0}
	if len(points) != len(want) {
		t.Fatalf("unexpected weekly points: %+v", points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("week index %d: got %v want %v", i, points[i], want[i])
		}
	}

	empty, err := client.FetchPlayerWeeklyPoints(context.Background(), "9999", 2025)
	if err != nil {
		t.Fatalf("fetch weekly points for unknown player: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no points, got %+v", empty)
	}
}

func TestClient_CircuitBreakerOpensOnUpstreamFailures(t *testing.T) {
	t.Parallel()

	fake := newFakeSleeper(t)
	fake.stateStatus.Store(http.StatusBadGateway)
	client := newTestClient(fake, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.FetchNFLState(ctx)
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadGateway {
			t.Fatalf("attempt %d: expected 502 status error, got %v", i, err)
		}
	}

	_, err := client.FetchNFLState(ctx)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if client.breaker.State() != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", client.breaker.State())
	}
}
