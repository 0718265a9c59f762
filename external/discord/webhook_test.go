package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func TestWebhook_PostMessage(t *testing.T) {
	t.Parallel()

	var got webhookPayload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := jsoniter.Unmarshal(body, &got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(WebhookConfig{URL: srv.URL, Timeout: 2 * time.Second, Logger: logging.NewNop()})
	message := "🎉 **Weekly High Score Payouts for Week 3** 🎉"
	if err := hook.PostMessage(context.Background(), message); err != nil {
		t.Fatalf("post message: %v", err)
	}
	if got.Content != message {
		t.Fatalf("unexpected content %q", got.Content)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
}

func TestWebhook_PostMessage_RejectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Cannot send an empty message"}`))
	}))
	defer srv.Close()

	hook := NewWebhook(WebhookConfig{URL: srv.URL, Logger: logging.NewNop()})
	err := hook.PostMessage(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "status=400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestWebhook_PostMessage_NotConfigured(t *testing.T) {
	t.Parallel()

	hook := NewWebhook(WebhookConfig{})
	if hook.Configured() {
		t.Fatalf("expected unconfigured webhook")
	}
	if err := hook.PostMessage(context.Background(), "hello"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestWebhook_PostMessage_TruncatesLongContent(t *testing.T) {
	t.Parallel()

	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(WebhookConfig{URL: srv.URL, Logger: logging.NewNop()})
	if err := hook.PostMessage(context.Background(), strings.Repeat("x", 2500)); err != nil {
		t.Fatalf("post message: %v", err)
	}
	if n := len([]rune(got.Content)); n != maxContentLength {
		t.Fatalf("expected truncated content of %d runes, got %d", maxContentLength, n)
	}
}
