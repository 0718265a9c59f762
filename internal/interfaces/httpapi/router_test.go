package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

const testInternalToken = "job-secret"

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	switch token {
	case "admin-token":
		return user.Principal{Subject: "1", Name: "commish", Roles: []string{user.RoleAdmin}}, nil
	case "member-token":
		return user.Principal{Subject: "2", Name: "member"}, nil
	default:
		return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}
}

type routerFixture struct {
	router  http.Handler
	members *memory.MemberRepository
	leagues *memory.LeagueRepository
	teams   *memory.TeamRepository
	jobRuns *memory.JobRunRepository
	locker  *memory.Locker
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := logging.NewNop()
	store := memory.NewStore()
	f := &routerFixture{
		members: memory.NewMemberRepository(store),
		leagues: memory.NewLeagueRepository(store),
		teams:   memory.NewTeamRepository(store),
		jobRuns: memory.NewJobRunRepository(store),
		locker:  memory.NewLocker(),
	}
	scores := memory.NewWeeklyScoreRepository(store)
	playoffs := memory.NewPlayoffRepository(store)
	payouts := memory.NewPayoutRepository(store)
	common := memory.NewCommonPlayerRepository(store)
	rules := usecase.SeasonRules{}

	handler := NewHandler(Services{
		Leagues: usecase.NewLeagueService(f.leagues, f.members),
		Members: usecase.NewMemberService(f.members),
		Teams:   usecase.NewTeamService(f.leagues, f.teams),
		Scores:  usecase.NewScoreService(scores, common),
		Payouts: usecase.NewPayoutService(payouts, f.members),
		Sync: usecase.NewSyncService(
			nil,
			f.leagues,
			usecase.NewIdentityReconciler(f.members, memory.NewUserRepository(store), logger),
			usecase.NewRosterReconciler(f.members, f.teams, logger),
			usecase.NewScoreIngestion(nil, f.teams, scores, rules, logger),
			usecase.NewPlayoffLatch(nil, playoffs, f.teams, rules, logger),
			usecase.NewCommonPlayerAggregator(nil, f.teams, common, rules, logger),
			f.locker,
			logger,
		),
		Tournament:    usecase.NewTournamentService(f.leagues, f.teams, scores, playoffs, f.locker, rules, logger),
		WeeklyWinners: usecase.NewWeeklyWinnerService(f.leagues, f.members, scores, payouts, nil, rules, logger),
		JobRunner:     usecase.NewJobRunner(f.jobRuns, nil, logger),
	}, logger)
	f.router = NewRouter(handler, stubVerifier{}, logger, []string{"*"}, testInternalToken)
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, decoded
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_MembersHidePaymentInfoPublicly(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	ctx := context.Background()
	created, err := f.members.Create(ctx, member.NewMember{Username: "alice", FullName: "Alice", SleeperID: "u1"})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if _, _, err := f.members.UpdatePaymentInfo(ctx, created.ID, "@alice"); err != nil {
		t.Fatalf("update payment info: %v", err)
	}

	_, public := f.do(t, http.MethodGet, "/v1/members", "", nil)
	rows := public["data"].([]any)
	if _, ok := rows[0].(map[string]any)["payment_info"]; ok {
		t.Fatalf("public member listing leaked payment info: %v", rows[0])
	}

	_, private := f.do(t, http.MethodGet, "/v1/admin/members", "", bearer("admin-token"))
	rows = private["data"].([]any)
	if got := rows[0].(map[string]any)["payment_info"]; got != "@alice" {
		t.Fatalf("expected payment info for admins, got %v", got)
	}
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	cases := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "bad token", headers: bearer("nope"), want: http.StatusUnauthorized},
		{name: "non admin", headers: bearer("member-token"), want: http.StatusForbidden},
		{name: "admin", headers: bearer("admin-token"), want: http.StatusOK},
	}
	for _, tc := range cases {
		rec, _ := f.do(t, http.MethodGet, "/v1/admin/members", "", tc.headers)
		if rec.Code != tc.want {
			t.Fatalf("%s: status=%d want=%d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestRouter_InternalJobRecordsRun(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	ctx := context.Background()
	item, err := f.leagues.Create(ctx, league.League{Name: "Alpha", SleeperLeagueID: "1048", Season: 2025})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if _, err := f.teams.UpsertStanding(ctx, team.Standing{LeagueID: item.ID, SleeperRosterID: 1, TeamName: "One"}); err != nil {
		t.Fatalf("upsert team: %v", err)
	}
	if err := f.teams.MarkPlayoffTeams(ctx, item.ID, []int{1}); err != nil {
		t.Fatalf("mark playoff teams: %v", err)
	}

	rec, _ := f.do(t, http.MethodPost, "/v1/internal/jobs/start-playoff", "", map[string]string{"X-Internal-Job-Token": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a wrong job token, got %d", rec.Code)
	}

	rec, body := f.do(t, http.MethodPost, "/v1/internal/jobs/start-playoff", "", map[string]string{"X-Internal-Job-Token": testInternalToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := body["data"].(map[string]any)
	runID, _ := data["run_id"].(string)
	event, ok := f.jobRuns.Get(runID)
	if !ok || event.Trigger != usecase.TriggerInternal || event.Status != "completed" {
		t.Fatalf("unexpected job run %q: %+v", runID, event)
	}
	result := data["result"].(map[string]any)
	if added, _ := result["added_count"].(float64); added != 1 {
		t.Fatalf("expected one entry added, got %v", result)
	}
}

func TestRouter_ConcurrentPassIsConflict(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	release, ok, err := f.locker.TryLock(context.Background(), usecase.PassLockKey)
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	defer release()

	rec, body := f.do(t, http.MethodPost, "/v1/admin/sync", "", bearer("admin-token"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if status := body["error"].(map[string]any)["status"]; status != "ABORTED" {
		t.Fatalf("unexpected error status %v", status)
	}
}

func TestRouter_EliminationRequiresWeek(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	for _, payload := range []string{"", `{}`, `{"week": 15, "extra": true}`} {
		rec, _ := f.do(t, http.MethodPost, "/v1/admin/playoff/eliminations", payload, bearer("admin-token"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %q: expected 400, got %d", payload, rec.Code)
		}
	}
}

func TestRouter_RegisterLeagueThenConflict(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	payload := `{"sleeper_league_id": "1048", "name": "Alpha", "season": 2025}`

	rec, body := f.do(t, http.MethodPost, "/v1/admin/leagues", payload, bearer("admin-token"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id := body["data"].(map[string]any)["id"].(float64)

	rec, _ = f.do(t, http.MethodPost, "/v1/admin/leagues", payload, bearer("admin-token"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", rec.Code)
	}

	rec, _ = f.do(t, http.MethodGet, fmt.Sprintf("/v1/leagues/%d", int64(id)), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected league lookup 200, got %d", rec.Code)
	}
	rec, _ = f.do(t, http.MethodGet, "/v1/leagues/abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", rec.Code)
	}
}

func TestRouter_TeamsOrderingValidation(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rec, _ := f.do(t, http.MethodGet, "/v1/teams?ordering=name", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	rec, body := f.do(t, http.MethodGet, "/v1/widgets/weekly-winner", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if winners := body["data"].(map[string]any)["winners"].([]any); len(winners) != 0 {
		t.Fatalf("expected no winners, got %v", winners)
	}
}
