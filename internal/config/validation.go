package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Validate checks that every exclude pattern is a well-formed filename glob.
func Validate(cfg *Config) error {
	for i, p := range cfg.Exclude {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude[%d]: pattern is empty", i)
		}
		if strings.ContainsRune(p, '/') {
			return fmt.Errorf("exclude[%d]: %q must match a file name, not a path", i, p)
		}
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("exclude[%d]: %q: %w", i, p, err)
		}
	}
	return nil
}
