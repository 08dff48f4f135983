// Package render converts stored markdown into sanitized HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// policy allows the formatting produced by goldmark while stripping
// scripts and event handlers. Content is editable through the admin API,
// so it is sanitized on the way out.
var policy = bluemonday.UGCPolicy()

// md passes raw HTML through to the renderer; sanitizing is the policy's
// job, which keeps inline HTML in posts usable instead of silently dropped.
var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown renders markdown to sanitized HTML.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}
