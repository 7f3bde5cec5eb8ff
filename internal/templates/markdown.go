package templates

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const markdownFilter = "markdown"

var (
	registerOnce sync.Once
	registerErr  error

	md = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// registerFilters installs the engine-level filters. pongo2 keeps filters in a
// process-wide registry, so this runs once.
func registerFilters() error {
	registerOnce.Do(func() {
		if pongo2.FilterExists(markdownFilter) {
			return
		}
		registerErr = pongo2.RegisterFilter(markdownFilter, filterMarkdown)
	})
	return registerErr
}

// RenderMarkdown converts GitHub-flavoured Markdown to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func filterMarkdown(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	html, err := RenderMarkdown(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + markdownFilter, OrigError: err}
	}
	return pongo2.AsSafeValue(html), nil
}
