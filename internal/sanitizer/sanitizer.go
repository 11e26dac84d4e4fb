// Package sanitizer prepares stored markup for structural diffing: markdown
// content is rendered to HTML first, then everything passes through a
// bluemonday policy so only well-formed, safe markup reaches the parser.
package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer strips unsafe markup using a UGC policy.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer with the UGC policy plus the
// attributes the structural differ reports on (href, src, class, id).
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "id").Globally()

	return &HTMLSanitizer{policy: policy}
}

// Sanitize returns a safe version of the given HTML fragment.
func (s *HTMLSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}
