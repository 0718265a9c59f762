package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	idgen "github.com/riskibarqy/sleeper-league/internal/platform/id"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PassLockKey is the single advisory lock key shared by every mutating pass.
const PassLockKey = "sleeper-league:passes"

const (
	TriggerAdmin    = "admin"
	TriggerInternal = "internal"
	TriggerCLI      = "cli"
)

// JobRequest describes one triggered job run.
type JobRequest struct {
	Name    string
	Trigger string
	Payload map[string]any
}

// JobRunner records the started/completed/failed transitions of a job run.
// Recording failures are logged and never fail the job itself.
type JobRunner struct {
	repo   jobrun.Repository
	ids    idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewJobRunner(repo jobrun.Repository, ids idgen.Generator, logger *logging.Logger) *JobRunner {
	if ids == nil {
		ids = idgen.NewRunIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &JobRunner{
		repo:   repo,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes fn and returns the run id assigned to it.
func (r *JobRunner) Run(ctx context.Context, req JobRequest, fn func(ctx context.Context) error) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "", fmt.Errorf("%w: job name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Trigger) == "" {
		req.Trigger = TriggerAdmin
	}

	runID, err := r.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate job run id: %w", err)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.JobRunner.Run",
		attribute.String("job.name", req.Name),
		attribute.String("job.trigger", req.Trigger),
		attribute.String("job.run_id", runID),
	)
	defer span.End()

	event := jobrun.Event{
		RunID:   runID,
		JobName: req.Name,
		Trigger: req.Trigger,
		Payload: req.Payload,
	}
	r.record(ctx, event, jobrun.StatusStarted, nil)

	if err := fn(ctx); err != nil {
		markSpanError(span, err)
		r.record(ctx, event, jobrun.StatusFailed, err)
		return runID, err
	}
	r.record(ctx, event, jobrun.StatusCompleted, nil)
	return runID, nil
}

func (r *JobRunner) record(ctx context.Context, event jobrun.Event, status jobrun.Status, runErr error) {
	if r.repo == nil {
		return
	}
	event.Status = status
	event.OccurredAt = r.now().UTC()
	if runErr != nil {
		event.ErrorMessage = runErr.Error()
	}
	event.TraceID, event.SpanID = traceMetaFromContext(ctx)

	if err := r.repo.UpsertEvent(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "record job run event failed",
			"run_id", event.RunID,
			"job_name", event.JobName,
			"status", event.Status,
			"error", err,
		)
	}
}

// acquirePassLock takes the shared pass lock or fails with ErrConflict.
func acquirePassLock(ctx context.Context, locker jobrun.Locker, pass string) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	release, ok, err := locker.TryLock(ctx, PassLockKey)
	if err != nil {
		return nil, fmt.Errorf("acquire pass lock for %s: %w", pass, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: another pass is running, %s rejected", ErrConflict, pass)
	}
	return release, nil
}

func traceMetaFromContext(ctx context.Context) (string, string) {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return "", ""
	}
	return spanContext.TraceID().String(), spanContext.SpanID().String()
}
