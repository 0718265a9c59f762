package httpapi

import (
	"context"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx, span := startSpan(context.Background(), "httpapi.Handler.ListLeagues")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Fatalf("expected no-op span without a server span")
	}
	if ctx != context.Background() {
		t.Fatalf("expected context to be returned unchanged")
	}
}

func TestStartSpan_TagsCallerAndTrigger(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctx, server := provider.Tracer("test").Start(context.Background(), "POST /v1/admin/sync")
	ctx = withPrincipal(ctx, user.Principal{Subject: "commish", Roles: []string{user.RoleAdmin}})
	ctx = withJobTrigger(ctx, usecase.TriggerAdmin)

	_, span := startSpan(ctx, "httpapi.Handler.RunSync")
	span.End()
	server.End()

	ended := recorder.Ended()
	if len(ended) != 2 || ended[0].Name() != "httpapi.Handler.RunSync" {
		t.Fatalf("unexpected spans: %d", len(ended))
	}
	got := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		got[kv.Key] = kv.Value
	}
	if got["enduser.id"].AsString() != "commish" || !got["enduser.admin"].AsBool() || got["job.trigger"].AsString() != usecase.TriggerAdmin {
		t.Fatalf("unexpected attributes: %v", ended[0].Attributes())
	}
}

func TestRequestAttributes_Anonymous(t *testing.T) {
	t.Parallel()

	if attrs := requestAttributes(context.Background()); len(attrs) != 0 {
		t.Fatalf("expected no attributes, got %v", attrs)
	}
}
