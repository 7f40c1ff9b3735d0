// Package config provides configuration management for the goexamples CLI.
//
// Values are layered from built-in defaults, an optional YAML file,
// GOEXAMPLES_ environment variables and explicitly set command-line flags,
// in increasing order of precedence.
package config

import "time"

// Menu styles accepted by menu.style.
const (
	MenuStyleMenu   = "menu"
	MenuStylePrompt = "prompt"
)

// ValidMenuStyles lists the accepted menu styles.
var ValidMenuStyles = []string{MenuStyleMenu, MenuStylePrompt}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=plain
	DefaultMenuStyle     = MenuStyleMenu
	DefaultProgressSteps = 20
	DefaultProgressDelay = 30 * time.Millisecond
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool           `koanf:"verbose"`
	OutputFormat string         `koanf:"output"`
	Group        string         `koanf:"group"`
	Menu         MenuConfig     `koanf:"menu"`
	Progress     ProgressConfig `koanf:"progress"`
}

// MenuConfig controls how the selection is read.
type MenuConfig struct {
	Style   string `koanf:"style"`
	Default int    `koanf:"default"` // 0-based initial cursor
}

// ProgressConfig controls the indicator shown before a group runs.
type ProgressConfig struct {
	Enabled bool          `koanf:"enabled"`
	Steps   int           `koanf:"steps"`
	Delay   time.Duration `koanf:"delay"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Menu: MenuConfig{
			Style: DefaultMenuStyle,
		},
		Progress: ProgressConfig{
			Enabled: true,
			Steps:   DefaultProgressSteps,
			Delay:   DefaultProgressDelay,
		},
	}
}
