package observability

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when pprof is disabled")
	}
	if err := StopPprofServer(srv, nil, time.Second); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestServePprof_ServesIndex(t *testing.T) {
	srv, err := servePprof("127.0.0.1:0", logging.NewNop())
	if err != nil {
		t.Fatalf("serve pprof: %v", err)
	}
	t.Cleanup(func() { _ = StopPprofServer(srv, logging.NewNop(), time.Second) })

	resp, err := http.Get("http://" + srv.Addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "goroutine") {
		t.Fatalf("unexpected pprof index status=%d", resp.StatusCode)
	}
}

func TestServePprof_AddressInUse(t *testing.T) {
	srv, err := servePprof("127.0.0.1:0", logging.NewNop())
	if err != nil {
		t.Fatalf("serve pprof: %v", err)
	}
	t.Cleanup(func() { _ = StopPprofServer(srv, nil, time.Second) })

	if _, err := servePprof(srv.Addr, logging.NewNop()); err == nil {
		t.Fatalf("expected listen error for %s", srv.Addr)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: "prod", ServiceName: "sleeper-league-api", ServiceVersion: "1.4.0"})
	if tags["env"] != "prod" || tags["service"] != "sleeper-league-api" || tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags %v", tags)
	}
	if _, ok := profileTags(config.Config{})["version"]; ok {
		t.Fatalf("expected version tag to be omitted when unset")
	}
}
