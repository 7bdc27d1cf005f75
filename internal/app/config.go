package app

import (
	"errors"
	"slices"

	"github.com/specialistvlad/qmock/internal/report"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// Names of the backend settings a circuit file may also provide.
const (
	SettingNumberQubits = "number_qubits"
	SettingMockedQubits = "mocked_qubits"
	SettingRepetitions  = "repetitions"
	SettingSeed         = "seed"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CircuitPath string // .hcl file or directory
	CircuitName string // run only this circuit; empty runs all

	NumberQubits        int
	MockedQubits        int
	Repetitions         int
	Seed                uint64
	Parallelism         int
	Substitutions       symbolic.Table
	GlobalPhaseRegister string

	// Pinned lists the backend settings given explicitly on the command
	// line. A backend block in a circuit file does not override them.
	Pinned []string

	OutputFormat    report.Format
	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	PublishURL      string
	PublishEvent    string
	WebhookURL      string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.CircuitPath == "" {
		return nil, errors.New("CircuitPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatJSON
	}
	if _, err := report.ParseFormat(string(cfg.OutputFormat)); err != nil {
		return nil, err
	}
	if cfg.Parallelism < 0 {
		return nil, errors.New("parallelism must not be negative")
	}
	return &cfg, nil
}

func (c *Config) pinned(setting string) bool {
	return slices.Contains(c.Pinned, setting)
}
