package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/qmock/internal/app"
	"github.com/specialistvlad/qmock/internal/report"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// pinnable maps flags to the backend settings a circuit file may also set.
var pinnable = map[string]string{
	"qubits":        app.SettingNumberQubits,
	"mocked-qubits": app.SettingMockedQubits,
	"repetitions":   app.SettingRepetitions,
	"seed":          app.SettingSeed,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are taken, lowest precedence first, from the flag defaults, the
// --config file and explicitly given flags. Backend settings given as flags
// are pinned so that circuit files cannot override them.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("qmock", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
qmock - Mocked quantum-circuit execution engine.

Runs the circuits of HCL circuit files without simulating them and writes
synthetic, shape-correct measurement results.

Usage:
  qmock [options] [CIRCUIT_PATH]

Arguments:
  CIRCUIT_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	circuitFlag := flagSet.String("circuit", "", "Path to the circuit file or directory.")
	cFlag := flagSet.String("c", "", "Path to the circuit file or directory (shorthand).")
	nameFlag := flagSet.String("name", "", "Run only the circuit with this name.")
	qubitsFlag := flagSet.Int("qubits", 0, "Number of qubits of the mocked device.")
	mockedFlag := flagSet.Int("mocked-qubits", 0, "Qubit count used for synthetic state sizes. 0 uses --qubits.")
	repetitionsFlag := flagSet.Int("repetitions", 1, "Number of runs per circuit.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed of the synthetic results.")
	parallelFlag := flagSet.Int("parallel", 1, "Maximum number of concurrent runs.")
	var substitutions symbolic.Table
	flagSet.Var(&substitutions, "set", "Symbol substitution as name=value. Repeatable.")
	outputFormatFlag := flagSet.String("output-format", "json", "Report format. Options: 'json' or 'msgpack'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io endpoint that receives every report.")
	publishEventFlag := flagSet.String("publish-event", "", "Event name for published reports.")
	webhookURLFlag := flagSet.String("webhook-url", "", "HTTP endpoint that receives every report as a JSON POST.")
	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path := ""
	if *circuitFlag != "" {
		path = *circuitFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if *configFlag != "" {
		file, defined, err := loadFileConfig(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		fromFile := func(name string) bool { return defined[name] && !explicit[name] }
		if path == "" && defined["circuit"] {
			path = file.Circuit
		}
		if fromFile("name") {
			*nameFlag = file.Name
		}
		if fromFile("qubits") {
			*qubitsFlag = file.Qubits
		}
		if fromFile("mocked-qubits") {
			*mockedFlag = file.MockedQubits
		}
		if fromFile("repetitions") {
			*repetitionsFlag = file.Repetitions
		}
		if fromFile("seed") {
			*seedFlag = file.Seed
		}
		if fromFile("parallel") {
			*parallelFlag = file.Parallel
		}
		if fromFile("output-format") {
			*outputFormatFlag = file.OutputFormat
		}
		if fromFile("log-format") {
			*logFormatFlag = file.LogFormat
		}
		if fromFile("log-level") {
			*logLevelFlag = file.LogLevel
		}
		if fromFile("healthcheck-port") {
			*healthPortFlag = file.HealthcheckPort
		}
		if fromFile("publish-url") {
			*publishURLFlag = file.Publish.URL
		}
		if fromFile("publish-event") {
			*publishEventFlag = file.Publish.Event
		}
		if fromFile("webhook-url") {
			*webhookURLFlag = file.Publish.Webhook
		}
		if defined["set"] {
			substitutions = symbolic.Table(file.Substitutions).Merge(substitutions)
		}
	}
	slog.Debug("Circuit path determined.", "path", path)

	if path == "" {
		slog.Debug("No circuit path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	outputFormat, err := report.ParseFormat(*outputFormatFlag)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	if *qubitsFlag < 0 || *mockedFlag < 0 || *repetitionsFlag < 0 {
		return nil, false, usageError("qubits, mocked-qubits and repetitions must not be negative")
	}
	if *parallelFlag < 1 {
		return nil, false, usageError("parallel must be at least 1")
	}

	var pinned []string
	for name, setting := range pinnable {
		if explicit[name] {
			pinned = append(pinned, setting)
		}
	}
	slices.Sort(pinned)
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CircuitPath:     path,
		CircuitName:     *nameFlag,
		NumberQubits:    *qubitsFlag,
		MockedQubits:    *mockedFlag,
		Repetitions:     *repetitionsFlag,
		Seed:            *seedFlag,
		Parallelism:     *parallelFlag,
		Substitutions:   substitutions,
		Pinned:          pinned,
		OutputFormat:    outputFormat,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		PublishURL:      *publishURLFlag,
		PublishEvent:    *publishEventFlag,
		WebhookURL:      *webhookURLFlag,
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
