package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/peloton.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Frontend:     "terminal",
			FlushLatency: 12 * time.Millisecond, // ~1KiB over 1MHz I2C
			Invert:       false,
		},
		Entropy: EntropyConfig{
			Seed: 0,
		},
		Keys: KeyConfig{
			Left:   []string{"left", "a"},
			Center: []string{"down", "s", " "},
			Right:  []string{"right", "d"},
			Quit:   []string{"ctrl+c", "q"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.peloton/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKeyPath: "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
