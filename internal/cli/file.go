package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig is the layout of the --config TOML file. Keys mirror the
// long flag names with dashes replaced by underscores.
type fileConfig struct {
	Circuit         string             `toml:"circuit"`
	Name            string             `toml:"name"`
	Qubits          int                `toml:"qubits"`
	MockedQubits    int                `toml:"mocked_qubits"`
	Repetitions     int                `toml:"repetitions"`
	Seed            uint64             `toml:"seed"`
	Parallel        int                `toml:"parallel"`
	OutputFormat    string             `toml:"output_format"`
	LogFormat       string             `toml:"log_format"`
	LogLevel        string             `toml:"log_level"`
	HealthcheckPort int                `toml:"healthcheck_port"`
	Substitutions   map[string]float64 `toml:"substitutions"`
	Publish         struct {
		URL     string `toml:"url"`
		Event   string `toml:"event"`
		Webhook string `toml:"webhook"`
	} `toml:"publish"`
}

// loadFileConfig reads path. The returned set holds the flag names of the
// keys the file defines.
func loadFileConfig(path string) (*fileConfig, map[string]bool, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, nil, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	defined := make(map[string]bool)
	for flagName, key := range map[string][]string{
		"circuit":          {"circuit"},
		"name":             {"name"},
		"qubits":           {"qubits"},
		"mocked-qubits":    {"mocked_qubits"},
		"repetitions":      {"repetitions"},
		"seed":             {"seed"},
		"parallel":         {"parallel"},
		"output-format":    {"output_format"},
		"log-format":       {"log_format"},
		"log-level":        {"log_level"},
		"healthcheck-port": {"healthcheck_port"},
		"set":              {"substitutions"},
		"publish-url":      {"publish", "url"},
		"publish-event":    {"publish", "event"},
		"webhook-url":      {"publish", "webhook"},
	} {
		if meta.IsDefined(key...) {
			defined[flagName] = true
		}
	}
	return &cfg, defined, nil
}
