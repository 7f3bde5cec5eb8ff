package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "exclude:\n  - \"*.psd\"\n  - drafts\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.psd", "drafts"}, cfg.Exclude)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), false)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "exclued:\n  - x\n"), true)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "exclude: [unterminated\n"), true)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
}

func TestLoad_InvalidPattern(t *testing.T) {
	_, err := Load(writeConfig(t, "exclude:\n  - \"[abc\"\n"), true)
	require.Error(t, err)
	assert.True(t, serrors.IsCategory(err, serrors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		exclude []string
		wantErr bool
	}{
		{"no patterns", nil, false},
		{"globs", []string{"*.psd", "draft-?", "[ab]*"}, false},
		{"alternation", []string{"{draft,wip}-*", "[!a-z]*"}, false},
		{"empty pattern", []string{"  "}, true},
		{"path pattern", []string{"drafts/*.md"}, true},
		{"bad syntax", []string{"[z-"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&Config{Exclude: tc.exclude})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
