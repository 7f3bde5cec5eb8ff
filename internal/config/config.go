package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// DefaultFileName is looked up in the source root when no config file is
// given. The leading underscore keeps it out of the generated site.
const DefaultFileName = "_site.yaml"

// Config represents the optional site configuration.
type Config struct {
	// Exclude lists additional filename globs (gobwas/glob syntax) that are
	// skipped on top of the built-in rules. Patterns match base names only.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Load reads the configuration at path. When required is false a missing file
// yields an empty configuration; otherwise it is an error. Unknown keys are
// rejected so typos do not pass silently.
func Load(path string, required bool) (*Config, error) {
	// #nosec G304 -- the config path is chosen by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, serrors.ConfigNotFound(path)
			}
			return &Config{}, nil
		}
		return nil, serrors.ConfigInvalid(path, fmt.Errorf("read config: %w", err))
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, serrors.ConfigInvalid(path, fmt.Errorf("unmarshal config: %w", err))
	}

	if err := Validate(&cfg); err != nil {
		return nil, serrors.ConfigInvalid(path, err)
	}
	return &cfg, nil
}
