// Package escape provides the escaping functions compiled templates apply to
// substituted reference values. Rendering always re-escapes at substitution
// time; presenter output is never trusted to be pre-escaped.
package escape

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Func escapes one substituted value before it is written into rendered
// output.
type Func func(string) string

// HTML replaces markup-significant characters with HTML entities. It is the
// default escaper for compiled templates.
func HTML(s string) string {
	return html.EscapeString(s)
}

// None passes values through unescaped. Intended for plain-text output
// formats where entity escaping would corrupt the result.
func None(s string) string {
	return s
}

// Policy adapts a bluemonday policy as a Func. Use this when presenters
// return curated markup that should be filtered rather than entity-escaped;
// text content outside the allowed elements is still entity-escaped by the
// policy itself.
func Policy(p *bluemonday.Policy) Func {
	return p.Sanitize
}

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// StrictText strips every element and attribute and entity-escapes the text
// that remains. The backing policy is built once and reused.
func StrictText() Func {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize
}
