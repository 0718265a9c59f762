package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

type Handler struct {
	leagueService *usecase.LeagueService
	memberService *usecase.MemberService
	teamService   *usecase.TeamService
	scoreService  *usecase.ScoreService
	payoutService *usecase.PayoutService
	syncService   *usecase.SyncService
	tournament    *usecase.TournamentService
	weeklyWinners *usecase.WeeklyWinnerService
	jobRunner     *usecase.JobRunner
	logger        *logging.Logger
	validator     *validator.Validate
}

// Services groups the use cases served over HTTP.
type Services struct {
	Leagues       *usecase.LeagueService
	Members       *usecase.MemberService
	Teams         *usecase.TeamService
	Scores        *usecase.ScoreService
	Payouts       *usecase.PayoutService
	Sync          *usecase.SyncService
	Tournament    *usecase.TournamentService
	WeeklyWinners *usecase.WeeklyWinnerService
	JobRunner     *usecase.JobRunner
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: services.Leagues,
		memberService: services.Members,
		teamService:   services.Teams,
		scoreService:  services.Scores,
		payoutService: services.Payouts,
		syncService:   services.Sync,
		tournament:    services.Tournament,
		weeklyWinners: services.WeeklyWinners,
		jobRunner:     services.JobRunner,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
