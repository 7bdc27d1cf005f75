package publish_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/specialistvlad/qmock/internal/publish"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhook_PostsReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var mu sync.Mutex
	var got []*report.Report
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reports, err := report.Read(bytes.NewReader(body), report.FormatJSON)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		got = append(got, reports...)
		headers = r.Header.Clone()
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	hook, err := publish.NewWebhook(context.Background(), publish.WebhookConfig{
		URL:     server.URL + "/reports",
		Headers: map[string]string{"X-Run": "42"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = hook.Close() })

	out := register.NewOutputs()
	out.Reals["probs"] = [][]float64{{0.25, 0.75}}

	// --- Act ---
	err = hook.Publish(context.Background(), report.New("bell", 1, 7, 0, out))

	// --- Assert ---
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "bell", got[0].Circuit)
	assert.Equal(t, [][]float64{{0.25, 0.75}}, got[0].Reals["probs"])
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "42", headers.Get("X-Run"))
}

func TestWebhook_ErrorStatusFailsPublish(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	hook, err := publish.NewWebhook(context.Background(), publish.WebhookConfig{URL: server.URL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = hook.Close() })

	// --- Act ---
	err = hook.Publish(context.Background(), report.New("c", 1, 0, 0, nil))

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewWebhook_RejectsBadURLs(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"/reports", "ws://localhost/reports", "http://"} {
		_, err := publish.NewWebhook(context.Background(), publish.WebhookConfig{URL: raw})
		assert.Error(t, err, raw)
	}
}
