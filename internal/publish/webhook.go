package publish

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/report"
	"resty.dev/v3"
)

// WebhookConfig describes an HTTP endpoint that receives reports as JSON
// POST requests.
type WebhookConfig struct {
	URL     string
	Headers map[string]string
	// Timeout defaults to 30s.
	Timeout time.Duration
}

// Webhook posts reports to an HTTP endpoint.
type Webhook struct {
	client *resty.Client
	url    string
	logger *slog.Logger
}

// NewWebhook validates cfg and creates the HTTP client.
func NewWebhook(ctx context.Context, cfg WebhookConfig) (*Webhook, error) {
	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("webhook URL %q must use http or https", cfg.URL)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("webhook URL %q must be absolute", cfg.URL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeaders(cfg.Headers)

	logger := ctxlog.FromContext(ctx).With("component", "webhook", "url", cfg.URL)
	logger.Debug("Webhook client created.", "timeout", timeout)
	return &Webhook{client: client, url: cfg.URL, logger: logger}, nil
}

// Publish posts r. Any non-2xx response is an error.
func (w *Webhook) Publish(ctx context.Context, r *report.Report) error {
	body, err := r.Marshal(report.FormatJSON)
	if err != nil {
		return err
	}

	w.logger.Debug("Posting report", "circuit", r.Circuit, "bytes", len(body))
	res, err := w.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("failed to post report %q: %w", r.Circuit, err)
	}
	if res.IsError() {
		return fmt.Errorf("webhook rejected report %q: %s", r.Circuit, res.Status())
	}
	w.logger.Info("Report delivered", "circuit", r.Circuit, "status", res.StatusCode())
	return nil
}

// Close releases the HTTP client.
func (w *Webhook) Close() error {
	return w.client.Close()
}
