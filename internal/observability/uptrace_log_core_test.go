package observability

import (
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http_request", map[string]any{"http_path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http_request", map[string]any{"http_path": "/v1/leagues"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("sync finished", map[string]any{"http_path": "/healthz"}) {
		t.Fatalf("did not expect non-http_request event to be skipped")
	}
}

func TestBuildOTelLogAttributes_SortedKeys(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"week":      int64(15),
		"league_id": "1048",
		"payload":   nil,
	})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "league_id" || attrs[0].Value.AsString() != "1048" {
		t.Fatalf("unexpected league_id attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "payload" || attrs[1].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "week" || attrs[2].Value.AsInt64() != 15 {
		t.Fatalf("unexpected week attribute: %+v", attrs[2])
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"points": 142.5,
		"won":    true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}

func TestOTelLogCore_LevelAndFields(t *testing.T) {
	core := newUptraceLogCore("test", zapcore.WarnLevel)
	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be below the configured level")
	}

	child := core.With([]zapcore.Field{zap.String("job_name", "sync")})
	entry := zapcore.Entry{Level: zapcore.WarnLevel, Message: "job run failed", Time: time.Now()}
	if checked := child.Check(entry, nil); checked == nil {
		t.Fatalf("expected warn entry to be accepted")
	}
	if err := child.Write(entry, []zapcore.Field{zap.Int("attempt", 2)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(core.(*otelLogCore).fields) != 0 {
		t.Fatalf("With must not mutate the parent core")
	}
}
