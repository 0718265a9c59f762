package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-league/internal/app"
	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		job     string
		payload map[string]any
	}{
		{name: "sync", job: jobrun.JobSync},
		{name: "start-playoff", job: jobrun.JobStartPlayoff},
		{
			name:    "run-elimination",
			args:    []string{"-week", "16", "-season", "2025"},
			job:     jobrun.JobRunElimination,
			payload: map[string]any{"week": 16, "season": 2025},
		},
		{
			name:    "post-winners",
			args:    []string{"-week", "3", "-record-payouts"},
			job:     jobrun.JobPostWinners,
			payload: map[string]any{"week": 3, "record_payouts": true},
		},
	}
	for _, tc := range cases {
		cmd, err := parseCommand(tc.name, tc.args)
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		if cmd.request.Name != tc.job || cmd.request.Trigger != usecase.TriggerCLI {
			t.Fatalf("%s: unexpected request %+v", tc.name, cmd.request)
		}
		for key, want := range tc.payload {
			if got := cmd.request.Payload[key]; got != want {
				t.Fatalf("%s: payload[%s]=%v want=%v", tc.name, key, got, want)
			}
		}
	}
}

func TestParseCommand_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{name: "unknown"},
		{name: "run-elimination"},
		{name: "run-elimination", args: []string{"-week", "abc"}},
		{name: "post-winners", args: []string{"-record-payouts"}},
		{name: "sync", args: []string{"-week", "1"}},
	}
	for _, tc := range cases {
		if _, err := parseCommand(tc.name, tc.args); !errors.Is(err, errUsage) {
			t.Fatalf("%s %v: expected usage error, got %v", tc.name, tc.args, err)
		}
	}
}

func TestRun_StartPlayoffOnEmptyStore(t *testing.T) {
	t.Parallel()

	cfg := config.Config{AppEnv: config.EnvDev}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, logging.NewNop(), "start-playoff", nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if runID, _ := decoded["run_id"].(string); runID == "" {
		t.Fatalf("expected a run id, got %v", decoded)
	}
	result := decoded["result"].(map[string]any)
	if added, _ := result["added_count"].(float64); added != 0 {
		t.Fatalf("expected nothing added, got %v", result)
	}
}

func TestRun_IssueTokenVerifies(t *testing.T) {
	t.Parallel()

	cfg := config.Config{AdminAuth: config.AdminAuthConfig{JWTSecret: "test-secret", Issuer: "sleeper-league-api"}}
	var out bytes.Buffer
	err := run(context.Background(), cfg, nil, "issue-token", []string{"-subject", "7", "-name", "commish"}, &out)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := app.NewVerifier(cfg, nil).VerifyAccessToken(context.Background(), strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if principal.Subject != "7" || !principal.HasRole(user.RoleAdmin) {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestRun_IssueTokenRequiresSubject(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), config.Config{}, nil, "issue-token", nil, &bytes.Buffer{})
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
