package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/goexamples/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}

	if !slices.Contains(ValidMenuStyles, c.Menu.Style) {
		return fmt.Errorf("invalid menu style %q (valid: %s)", c.Menu.Style, strings.Join(ValidMenuStyles, ", "))
	}
	if c.Menu.Default < 0 {
		return fmt.Errorf("menu.default must not be negative, got %d", c.Menu.Default)
	}

	if c.Progress.Steps <= 0 {
		return fmt.Errorf("progress.steps must be positive, got %d", c.Progress.Steps)
	}
	if c.Progress.Delay < 0 {
		return fmt.Errorf("progress.delay must not be negative, got %s", c.Progress.Delay)
	}

	return nil
}
