package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/qmock/internal/circuitfile"
	"github.com/specialistvlad/qmock/internal/publish"
	"github.com/specialistvlad/qmock/internal/report"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published []*report.Report
	closed    bool
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, r *report.Report) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, r)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func writeCircuit(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

const phaseCircuit = `
circuit "phase" {
  operation "DefinitionFloat" {
    name      = "global_phase"
    length    = 1
    is_output = true
  }
  operation "PragmaGlobalPhase" {
    phase = 0.25
  }
}
`

func TestRun_PublishesEveryReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{CircuitPath: writeCircuit(t, phaseCircuit), NumberQubits: 1, PublishURL: "http://localhost:1"})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg)

	fake := &fakePublisher{}
	var gotCfg publish.Config
	testApp.connect = func(_ context.Context, c publish.Config) (reportPublisher, error) {
		gotCfg = c
		return fake, nil
	}

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1", gotCfg.URL)
	require.Len(t, fake.published, 1)
	assert.Equal(t, "phase", fake.published[0].Circuit)
	assert.Equal(t, 0.25, fake.published[0].GlobalPhase)
	assert.True(t, fake.closed)
}

func TestRun_PublishFailureFailsRun(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{CircuitPath: writeCircuit(t, phaseCircuit), NumberQubits: 1, PublishURL: "http://localhost:1"})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg)
	testApp.connect = func(context.Context, publish.Config) (reportPublisher, error) {
		return &fakePublisher{err: errors.New("broken pipe")}, nil
	}

	err = testApp.Run(context.Background())
	assert.ErrorContains(t, err, "broken pipe")
}

func TestRun_PostsReportsToWebhook(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var mu sync.Mutex
	var circuits []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reports, err := report.Read(r.Body, report.FormatJSON)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		for _, rep := range reports {
			circuits = append(circuits, rep.Circuit)
		}
		mu.Unlock()
	}))
	t.Cleanup(server.Close)

	cfg, err := NewConfig(Config{CircuitPath: writeCircuit(t, phaseCircuit), NumberQubits: 1, WebhookURL: server.URL})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg)

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"phase"}, circuits)
}

func TestBackendConfig_Precedence(t *testing.T) {
	t.Parallel()

	three, five := 3, 5
	seed := uint64(11)
	doc := &circuitfile.Document{
		Backend:       &circuitfile.Backend{NumberQubits: &three, Repetitions: &five, Seed: &seed},
		Substitutions: symbolic.Table{"a": 1, "b": 2},
	}

	testApp := &App{config: &Config{
		NumberQubits:  2,
		Repetitions:   9,
		Seed:          1,
		Substitutions: symbolic.Table{"b": 20},
		Pinned:        []string{SettingRepetitions},
	}}

	cfg := testApp.backendConfig(doc)

	assert.Equal(t, 3, cfg.NumberQubits, "file overrides unpinned defaults")
	assert.Equal(t, 9, cfg.Repetitions, "pinned flag overrides file")
	assert.Equal(t, uint64(11), cfg.Seed)
	assert.Equal(t, symbolic.Table{"a": 1, "b": 20}, cfg.Substitutions)
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{CircuitPath: "unused"})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg)
	testApp.Metrics().ObserveCircuit(2, nil)

	rec := httptest.NewRecorder()
	testApp.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())

	rec = httptest.NewRecorder()
	testApp.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "qmock_backend_mocked_qubits 2")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{CircuitPath: "x", OutputFormat: "yaml"})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{CircuitPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, cfg.OutputFormat)
}
