// Package config provides YAML-based configuration for the device emulator
// and its frontends.
package config

import "time"

// Config is the full harness configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Entropy EntropyConfig `yaml:"entropy"`
	Keys    KeyConfig     `yaml:"keys"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// DisplayConfig selects and tunes the display frontend.
type DisplayConfig struct {
	Frontend     string        `yaml:"frontend"`      // "terminal", "console" or "headless"
	FlushLatency time.Duration `yaml:"flush_latency"` // Emulated panel transfer time per frame
	Invert       bool          `yaml:"invert"`        // Swap lit and dark pixels
}

// EntropyConfig seeds the emulated ring oscillator.
type EntropyConfig struct {
	Seed int64 `yaml:"seed"` // 0 = random based on time
}

// KeyConfig maps keyboard keys to the three buttons.
type KeyConfig struct {
	Left   []string `yaml:"left"`
	Center []string `yaml:"center"`
	Right  []string `yaml:"right"`
	Quit   []string `yaml:"quit"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig configures `peloton serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
