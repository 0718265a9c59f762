package httpapi

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

type contextKey string

const (
	principalContextKey  contextKey = "auth_principal"
	jobTriggerContextKey contextKey = "job_trigger"
)

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}

func withJobTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, jobTriggerContextKey, trigger)
}

// jobTriggerFromContext defaults to the admin trigger.
func jobTriggerFromContext(ctx context.Context) string {
	if trigger, ok := ctx.Value(jobTriggerContextKey).(string); ok && trigger != "" {
		return trigger
	}
	return usecase.TriggerAdmin
}
