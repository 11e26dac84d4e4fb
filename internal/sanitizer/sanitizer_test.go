package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLSanitizer_StripsScripts(t *testing.T) {
	s := NewHTMLSanitizer()

	clean := s.Sanitize(`<p>ok</p><script>alert(1)</script>`)

	assert.Contains(t, clean, "<p>ok</p>")
	assert.NotContains(t, clean, "script")
}

func TestHTMLSanitizer_KeepsReportedAttributes(t *testing.T) {
	s := NewHTMLSanitizer()

	clean := s.Sanitize(`<div class="intro" id="top"><a href="https://example.com">link</a></div>`)

	assert.Contains(t, clean, `class="intro"`)
	assert.Contains(t, clean, `id="top"`)
	assert.Contains(t, clean, `href="https://example.com"`)
}

func TestMarkdownRenderer_RendersHeadingsAndLists(t *testing.T) {
	r := NewMarkdownRenderer()

	rendered, err := r.Render("# Title\n\n- one\n- two\n")
	require.NoError(t, err)

	assert.Contains(t, rendered, "<h1>Title</h1>")
	assert.Contains(t, rendered, "<li>one</li>")
}

func TestMarkdownRenderer_GFMTable(t *testing.T) {
	r := NewMarkdownRenderer()

	rendered, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)

	assert.True(t, strings.Contains(rendered, "<table>"))
}
