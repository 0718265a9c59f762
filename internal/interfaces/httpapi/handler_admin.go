package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func (h *Handler) AdminListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListMembers")
	defer span.End()

	items, err := h.memberService.ListMembers(ctx, true)
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

func (h *Handler) UpdateMemberPaymentInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMemberPaymentInfo")
	defer span.End()

	memberID, err := pathInt64(r, "memberID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req usecase.UpdatePaymentInfoInput
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.memberService.UpdatePaymentInfo(ctx, memberID, req)
	if err != nil {
		h.logger.WarnContext(ctx, "update payment info failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(item))
}

func (h *Handler) ToggleMemberDues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleMemberDues")
	defer span.End()

	memberID, err := pathInt64(r, "memberID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.memberService.ToggleDues(ctx, memberID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle dues failed", "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(item))
}

func (h *Handler) ToggleTeamPlayoffFlag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleTeamPlayoffFlag")
	defer span.End()

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.TogglePlayoffFlag(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle playoff flag failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req usecase.CreateLeagueInput
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "sleeper_league_id", req.SleeperLeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePayout")
	defer span.End()

	var req usecase.CreatePayoutInput
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.payoutService.CreatePayout(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "create payout failed", "recipient_id", req.RecipientID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, payoutToDTO(item))
}

func (h *Handler) TogglePayoutPaid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TogglePayoutPaid")
	defer span.End()

	payoutID, err := pathInt64(r, "payoutID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.payoutService.TogglePaid(ctx, payoutID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle payout paid failed", "payout_id", payoutID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payoutToDTO(item))
}
