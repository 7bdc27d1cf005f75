package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/qmock/internal/backend"
	"github.com/specialistvlad/qmock/internal/circuitfile"
	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/publish"
	"github.com/specialistvlad/qmock/internal/report"
)

// Run loads the circuit files, executes the selected circuits and writes
// one report per circuit.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx)
		defer a.closeHealthcheckServer(ctx)
	}

	doc, err := circuitfile.NewLoader(a.registry).Load(ctx, a.config.CircuitPath)
	if err != nil {
		return fmt.Errorf("failed to load circuits: %w", err)
	}
	circuits, err := a.selectCircuits(doc)
	if err != nil {
		return err
	}

	cfg := a.backendConfig(doc)
	b, err := backend.New(cfg, backend.WithMetrics(a.metrics))
	if err != nil {
		return err
	}

	var pubs []reportPublisher
	if a.config.PublishURL != "" {
		pub, err := a.connect(ctx, publish.Config{URL: a.config.PublishURL, Event: a.config.PublishEvent})
		if err != nil {
			return fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer pub.Close()
		pubs = append(pubs, pub)
	}
	if a.config.WebhookURL != "" {
		hook, err := a.webhook(ctx, publish.WebhookConfig{URL: a.config.WebhookURL})
		if err != nil {
			return fmt.Errorf("failed to create webhook: %w", err)
		}
		defer hook.Close()
		pubs = append(pubs, hook)
	}

	a.logger.Info("🚀 Running circuits...", "count", len(circuits), "qubits", cfg.NumberQubits, "repetitions", max(cfg.Repetitions, 1), "seed", cfg.Seed)
	for _, c := range circuits {
		res, err := b.Run(ctxlog.With(ctx, "circuit", c.Name), c.Circuit)
		if err != nil {
			return fmt.Errorf("circuit %q: %w", c.Name, err)
		}
		rep := report.New(c.Name, res.Repetitions, cfg.Seed, res.GlobalPhase, res.Outputs)
		if err := report.Write(a.outW, a.config.OutputFormat, rep); err != nil {
			return err
		}
		for _, pub := range pubs {
			if err := pub.Publish(ctx, rep); err != nil {
				return fmt.Errorf("circuit %q: publishing report: %w", c.Name, err)
			}
		}
	}
	a.logger.Info("🏁 Execution finished.")
	return nil
}

func (a *App) selectCircuits(doc *circuitfile.Document) ([]circuitfile.NamedCircuit, error) {
	if a.config.CircuitName != "" {
		c, ok := doc.Circuit(a.config.CircuitName)
		if !ok {
			return nil, fmt.Errorf("circuit %q not found in %s", a.config.CircuitName, a.config.CircuitPath)
		}
		return []circuitfile.NamedCircuit{c}, nil
	}
	if len(doc.Circuits) == 0 {
		return nil, fmt.Errorf("no circuit blocks found in %s", a.config.CircuitPath)
	}
	return doc.Circuits, nil
}

// backendConfig merges the app configuration with the backend block of the
// circuit files. Settings pinned on the command line win.
func (a *App) backendConfig(doc *circuitfile.Document) backend.Config {
	cfg := backend.Config{
		NumberQubits:        a.config.NumberQubits,
		MockedQubits:        a.config.MockedQubits,
		Repetitions:         a.config.Repetitions,
		Seed:                a.config.Seed,
		Parallelism:         a.config.Parallelism,
		Substitutions:       doc.Substitutions.Merge(a.config.Substitutions),
		GlobalPhaseRegister: a.config.GlobalPhaseRegister,
	}
	if fb := doc.Backend; fb != nil {
		if fb.NumberQubits != nil && !a.config.pinned(SettingNumberQubits) {
			cfg.NumberQubits = *fb.NumberQubits
		}
		if fb.MockedQubits != nil && !a.config.pinned(SettingMockedQubits) {
			cfg.MockedQubits = *fb.MockedQubits
		}
		if fb.Repetitions != nil && !a.config.pinned(SettingRepetitions) {
			cfg.Repetitions = *fb.Repetitions
		}
		if fb.Seed != nil && !a.config.pinned(SettingSeed) {
			cfg.Seed = *fb.Seed
		}
	}
	return cfg
}
