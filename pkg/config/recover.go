package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// loadTOML decodes path into cfg, failing on any syntax or type error.
func loadTOML(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// parseLoose re-reads a file that failed typed decoding into untyped maps.
// Values of the wrong type survive this parse and are skipped by the typed
// accessors below, so one bad key does not discard the rest of the file.
func parseLoose(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	loose := make(map[string]any)
	if _, err := toml.Decode(string(data), &loose); err != nil {
		return nil, err
	}
	return loose, nil
}

func section(data map[string]any, name string) (map[string]any, bool) {
	s, ok := data[name].(map[string]any)
	return s, ok
}

func intValue(data map[string]any, key string) (int, bool) {
	if v, ok := data[key].(int64); ok {
		return int(v), true
	}
	return 0, false
}

func stringValue(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}

func boolValue(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}
