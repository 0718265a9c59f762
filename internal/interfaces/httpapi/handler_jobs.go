package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	h.runJob(ctx, w, usecase.JobRequest{Name: jobrun.JobSync}, func(ctx context.Context) (any, error) {
		return h.syncService.Run(ctx)
	})
}

func (h *Handler) StartPlayoff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartPlayoff")
	defer span.End()

	h.runJob(ctx, w, usecase.JobRequest{Name: jobrun.JobStartPlayoff}, func(ctx context.Context) (any, error) {
		return h.tournament.Start(ctx)
	})
}

func (h *Handler) RunElimination(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunElimination")
	defer span.End()

	var req usecase.RunRoundInput
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runJob(ctx, w, usecase.JobRequest{
		Name:    jobrun.JobRunElimination,
		Payload: map[string]any{"week": req.Week, "season": req.Season},
	}, func(ctx context.Context) (any, error) {
		result, err := h.tournament.RunRound(ctx, req)
		if err != nil {
			return nil, err
		}
		return runRoundToDTO(result), nil
	})
}

func (h *Handler) PostWeeklyWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PostWeeklyWinners")
	defer span.End()

	var req usecase.PostWinnersInput
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runJob(ctx, w, usecase.JobRequest{
		Name:    jobrun.JobPostWinners,
		Payload: map[string]any{"week": req.Week, "record_payouts": req.RecordPayouts},
	}, func(ctx context.Context) (any, error) {
		return h.weeklyWinners.Post(ctx, req)
	})
}

// runJob executes fn through the job runner so every trigger records its
// run. The trigger comes from the guarding middleware. A pass runs to
// completion even if the client goes away.
func (h *Handler) runJob(ctx context.Context, w http.ResponseWriter, req usecase.JobRequest, fn func(ctx context.Context) (any, error)) {
	if h.jobRunner == nil {
		writeError(ctx, w, fmt.Errorf("%w: job runner is not configured", usecase.ErrDependencyUnavailable))
		return
	}
	req.Trigger = jobTriggerFromContext(ctx)

	var result any
	runID, err := h.jobRunner.Run(context.WithoutCancel(ctx), req, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	if err != nil {
		h.logger.WarnContext(ctx, "job run failed", "job_name", req.Name, "trigger", req.Trigger, "run_id", runID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, jobTriggeredDTO{RunID: runID, Result: result})
}
