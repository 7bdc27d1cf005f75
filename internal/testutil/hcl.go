package testutil

import (
	"testing"

	"github.com/specialistvlad/qmock/internal/app"
)

// RunCircuitTest runs a single circuit file with the given qubit count.
func RunCircuitTest(t *testing.T, circuitHCL string, numberQubits int) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"circuits/main.hcl": circuitHCL}, &app.Config{NumberQubits: numberQubits})
}
