// Package publish emits run reports to a socket.io endpoint.
package publish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/report"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event name reports are emitted under.
const DefaultEvent = "qmock:report"

// Config describes the socket.io endpoint.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
	// ConnectTimeout defaults to 15s.
	ConnectTimeout time.Duration
}

// Publisher emits reports over a connected socket.io client.
type Publisher struct {
	client *socket.Socket
	event  string
	logger *slog.Logger
}

// Connect dials the endpoint and waits for the connection to be
// established.
func Connect(ctx context.Context, cfg Config) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("component", "publisher", "url", cfg.URL)
	logger.Info("Connecting report publisher...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q must be absolute", cfg.URL)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	event := cfg.Event
	if event == "" {
		event = DefaultEvent
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Publisher connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- connectError(errs...)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{client: io, event: event, logger: logger}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// connectError turns the arguments of a connect_error event into an error.
// It never returns nil.
func connectError(args ...any) error {
	if len(args) == 0 || args[0] == nil {
		return errors.New("connection refused without a reason")
	}
	if err, ok := args[0].(error); ok {
		return err
	}
	return fmt.Errorf("%v", args[0])
}

// Publish emits r.
func (p *Publisher) Publish(ctx context.Context, r *report.Report) error {
	if !p.client.Connected() {
		return fmt.Errorf("publisher is not connected")
	}
	payload, err := Payload(r)
	if err != nil {
		return err
	}
	p.logger.Debug("Emitting report", "event", p.event, "circuit", r.Circuit)
	p.client.Emit(p.event, payload)
	return nil
}

// Close disconnects the client.
func (p *Publisher) Close() error {
	p.logger.Info("Closing report publisher", "sid", p.client.Id())
	p.client.Disconnect()
	return nil
}

// Payload converts r into the generic JSON value the socket.io parser
// encodes.
func Payload(r *report.Report) (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding report %q: %w", r.Circuit, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("encoding report %q: %w", r.Circuit, err)
	}
	return payload, nil
}
