package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSkip(t *testing.T) {
	tests := []struct {
		name string
		skip bool
	}{
		{".git", true},
		{".gitignore", true},
		{".gitmodules", true},
		{"dist", true},
		{"index.html~", true},
		{"_base.html.jinja", true},
		{"_partials", true},
		{"index.html.jinja", false},
		{"distribution", false},
		{"my_dist", false},
		{".well-known", false},
		{".htaccess", false},
		{"logo.png", false},
		{"a~b", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.skip, DefaultSkip(tc.name))
		})
	}
}

func TestSkipPatterns(t *testing.T) {
	skip, err := SkipPatterns([]string{"*.psd", "drafts"})
	require.NoError(t, err)

	assert.True(t, skip("cover.psd"))
	assert.True(t, skip("drafts"))
	assert.True(t, skip(".git"), "default rules still apply")
	assert.True(t, skip("_base.html.jinja"), "default rules still apply")
	assert.False(t, skip("cover.png"))
	assert.False(t, skip("drafts-2"))
}

func TestSkipPatterns_GlobSyntax(t *testing.T) {
	skip, err := SkipPatterns([]string{"{draft,wip}-*", "[!a-z]*.txt", "notes.?d"})
	require.NoError(t, err)

	tests := []struct {
		name string
		skip bool
	}{
		{"draft-1.html.jinja", true},
		{"wip-about", true},
		{"final-about", false},
		{"1-readme.txt", true},
		{"readme.txt", false},
		{"notes.md", true},
		{"notes.mdx", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.skip, skip(tc.name))
		})
	}
}

func TestSkipPatterns_Empty(t *testing.T) {
	skip, err := SkipPatterns(nil)
	require.NoError(t, err)
	assert.True(t, skip("dist"))
	assert.False(t, skip("index.html.jinja"))
}

func TestSkipPatterns_Invalid(t *testing.T) {
	_, err := SkipPatterns([]string{"*.psd", "[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"[unclosed"`)
}

func TestIsPage(t *testing.T) {
	assert.True(t, IsPage("index.html.jinja"))
	assert.True(t, IsPage("a.b.html.jinja"))
	assert.False(t, IsPage("index.html"))
	assert.False(t, IsPage("feed.xml.jinja"))
	assert.False(t, IsPage("index.jinja"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "page", KindPage.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "dir", KindDir.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
