package httpapi

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sleeper-league/internal/interfaces/httpapi"

// startSpan opens a handler span under the request's server span, tagged with
// the authenticated caller and job trigger. Untraced requests such as
// /healthz get the no-op span already in ctx.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(requestAttributes(ctx)...))
}

func requestAttributes(ctx context.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if principal, ok := principalFromContext(ctx); ok {
		attrs = append(attrs,
			attribute.String("enduser.id", principal.Subject),
			attribute.Bool("enduser.admin", principal.HasRole(user.RoleAdmin)),
		)
	}
	if trigger, ok := ctx.Value(jobTriggerContextKey).(string); ok && trigger != "" {
		attrs = append(attrs, attribute.String("job.trigger", trigger))
	}
	return attrs
}
