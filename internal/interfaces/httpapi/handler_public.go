package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMembers")
	defer span.End()

	items, err := h.memberService.ListMembers(ctx, false)
	if err != nil {
		h.logger.ErrorContext(ctx, "list members failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]memberDTO, 0, len(items))
	for _, item := range items {
		out = append(out, memberToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := pathInt64(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueID, err := queryInt64(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	ordering := r.URL.Query().Get("ordering")

	teams, err := h.teamService.ListTeams(ctx, usecase.TeamListInput{LeagueID: leagueID, Ordering: ordering})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "ordering", ordering, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScores")
	defer span.End()

	var (
		filter weeklyscore.Filter
		err    error
	)
	if filter.TeamID, err = queryInt64(r, "team"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.LeagueID, err = queryInt64(r, "league"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.Week, err = queryInt(r, "week"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.Season, err = queryInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.scoreService.ListScores(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list weekly scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]weeklyScoreDTO, 0, len(scores))
	for _, item := range scores {
		out = append(out, weeklyScoreToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayoffEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayoffEntries")
	defer span.End()

	var (
		filter playoff.Filter
		err    error
	)
	if filter.Season, err = queryInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.Week, err = queryInt(r, "week"); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.tournament.ListEntries(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list playoff entries failed", "season", filter.Season, "week", filter.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playoffEntryDTO, 0, len(entries))
	for _, item := range entries {
		out = append(out, playoffEntryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPayouts")
	defer span.End()

	var (
		filter payout.Filter
		err    error
	)
	if filter.Season, err = queryInt(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.RecipientID, err = queryInt64(r, "recipient"); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.payoutService.ListPayouts(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list payouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]payoutDTO, 0, len(items))
	for _, item := range items {
		out = append(out, payoutToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) WeeklyWinnerWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WeeklyWinnerWidget")
	defer span.End()

	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	winners, err := h.weeklyWinners.Winners(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly winner widget failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, winners)
}

func (h *Handler) PowerRankingsWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PowerRankingsWidget")
	defer span.End()

	leagueID, err := queryInt64(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.PowerRankings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "power rankings widget failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) CommonPlayersWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CommonPlayersWidget")
	defer span.End()

	items, err := h.scoreService.ListCommonPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "common players widget failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]commonPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, commonPlayerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
