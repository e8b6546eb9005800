package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !strings.HasSuffix(c.Mochi.BaseURL, "/") {
		return fmt.Errorf("mochi.base_url must end with a slash (got %q)", c.Mochi.BaseURL)
	}

	if c.Update.Concurrency < 1 {
		return fmt.Errorf("update.concurrency must be >= 1 (got %d)", c.Update.Concurrency)
	}
	if strings.TrimSpace(c.Update.WordField) == "" {
		return fmt.Errorf("update.word_field must not be empty")
	}
	if strings.TrimSpace(c.Update.PitchField) == "" {
		return fmt.Errorf("update.pitch_field must not be empty")
	}
	if c.Update.WordField == c.Update.PitchField {
		return fmt.Errorf("update.word_field and update.pitch_field must differ (both %q)", c.Update.WordField)
	}

	return nil
}
