package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// Discord rejects message content longer than this.
const maxContentLength = 2000

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
	Logger  *logging.Logger
	// Client is optional; tests inject one with a short dial timeout.
	Client *fasthttp.Client
}

// Webhook posts plain messages to a Discord channel webhook.
type Webhook struct {
	url     string
	timeout time.Duration
	logger  *logging.Logger
	client  *fasthttp.Client
}

var _ usecase.PayoutNotifier = (*Webhook)(nil)

type webhookPayload struct {
	Content string `json:"content"`
}

func NewWebhook(cfg WebhookConfig) *Webhook {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := cfg.Client
	if client == nil {
		client = &fasthttp.Client{
			Name:                "sleeper-league",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		}
	}

	return &Webhook{
		url:     strings.TrimSpace(cfg.URL),
		timeout: timeout,
		logger:  logger,
		client:  client,
	}
}

func (w *Webhook) Configured() bool {
	return w != nil && w.url != ""
}

func (w *Webhook) PostMessage(ctx context.Context, content string) error {
	if !w.Configured() {
		return fmt.Errorf("%w: discord payout webhook url is not configured", usecase.ErrDependencyUnavailable)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: message content is empty", usecase.ErrInvalidInput)
	}
	if len([]rune(content)) > maxContentLength {
		content = string([]rune(content)[:maxContentLength-3]) + "..."
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := jsonAPI.NewEncoder(buf).Encode(webhookPayload{Content: content}); err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(w.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(buf.B)

	deadline := time.Now().Add(w.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.client.DoDeadline(req, resp, deadline); err != nil {
		w.logger.WarnContext(ctx, "discord webhook request failed", "error", err)
		return fmt.Errorf("%w: post discord message: %v", usecase.ErrDependencyUnavailable, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > 240 {
			body = body[:240] + "..."
		}
		w.logger.WarnContext(ctx, "discord webhook rejected message", "status", status, "body", body)
		return fmt.Errorf("discord webhook status=%d body=%s", status, body)
	}

	return nil
}
