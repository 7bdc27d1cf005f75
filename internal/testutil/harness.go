// Package testutil provides a harness for integration tests that run the
// whole application against HCL files written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/qmock/internal/app"
	"github.com/specialistvlad/qmock/internal/registry"
	"github.com/specialistvlad/qmock/internal/report"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Reports   []*report.Report
	Output    []byte
	LogOutput string
	Err       error
	App       *app.App
}

// Report returns the report of the named circuit, failing the test if it
// is missing.
func (r *HarnessResult) Report(t *testing.T, circuit string) *report.Report {
	t.Helper()
	for _, rep := range r.Reports {
		if rep.Circuit == circuit {
			return rep
		}
	}
	require.FailNow(t, "report not found", "no report for circuit %q among %d reports", circuit, len(r.Reports))
	return nil
}

// RunIntegrationTest writes files below a temporary directory, points the
// application at it and runs it. cfg may be nil; its CircuitPath is always
// replaced by the temporary directory.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg *app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller
// provided context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg *app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if cfg == nil {
		cfg = &app.Config{}
	}
	cfg.CircuitPath = tmpDir
	cfg.LogFormat = "text"
	appConfig, err := app.NewConfig(*cfg)
	require.NoError(t, err)

	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	appConfig.LogLevel = "debug"

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, modules...)
	}()
	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("QMOCK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	output := outBuffer.Bytes()
	reports, err := report.Read(bytes.NewReader(output), appConfig.OutputFormat)
	require.NoError(t, err, "application wrote an undecodable report")

	return &HarnessResult{
		Reports:   reports,
		Output:    output,
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
