package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/members", handler.ListMembers)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/scores", handler.ListScores)
	mux.HandleFunc("GET /v1/playoff-entries", handler.ListPlayoffEntries)
	mux.HandleFunc("GET /v1/payouts", handler.ListPayouts)
	mux.HandleFunc("GET /v1/widgets/weekly-winner", handler.WeeklyWinnerWidget)
	mux.HandleFunc("GET /v1/widgets/power-rankings", handler.PowerRankingsWidget)
	mux.HandleFunc("GET /v1/widgets/common-players", handler.CommonPlayersWidget)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAdminTriggerRoutes(mux, handler, verifier)

	mux.Handle("GET /v1/admin/members", RequireAdmin(verifier, http.HandlerFunc(handler.AdminListMembers)))
	mux.Handle("PUT /v1/admin/members/{memberID}/payment-info", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateMemberPaymentInfo)))
	mux.Handle("POST /v1/admin/members/{memberID}/toggle-dues", RequireAdmin(verifier, http.HandlerFunc(handler.ToggleMemberDues)))
	mux.Handle("POST /v1/admin/teams/{teamID}/toggle-playoff-flag", RequireAdmin(verifier, http.HandlerFunc(handler.ToggleTeamPlayoffFlag)))
	mux.Handle("POST /v1/admin/leagues", RequireAdmin(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/admin/payouts", RequireAdmin(verifier, http.HandlerFunc(handler.CreatePayout)))
	mux.Handle("POST /v1/admin/payouts/{payoutID}/toggle-paid", RequireAdmin(verifier, http.HandlerFunc(handler.TogglePayoutPaid)))
}

func registerAdminTriggerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/sync", RequireAdmin(verifier, http.HandlerFunc(handler.RunSync)))
	mux.Handle("POST /v1/admin/playoff/start", RequireAdmin(verifier, http.HandlerFunc(handler.StartPlayoff)))
	mux.Handle("POST /v1/admin/playoff/eliminations", RequireAdmin(verifier, http.HandlerFunc(handler.RunElimination)))
	mux.Handle("POST /v1/admin/weekly-winners/post", RequireAdmin(verifier, http.HandlerFunc(handler.PostWeeklyWinners)))
}

// registerInternalJobRoutes mirrors the admin triggers for schedulers.
func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSync)))
	mux.Handle("POST /v1/internal/jobs/start-playoff", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.StartPlayoff)))
	mux.Handle("POST /v1/internal/jobs/run-elimination", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunElimination)))
	mux.Handle("POST /v1/internal/jobs/post-winners", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.PostWeeklyWinners)))
}
