package template

import (
	"fmt"
	"strings"

	"github.com/templatekit/go-curly/pkg/escape"
	"github.com/templatekit/go-curly/pkg/presenter"
)

// Template is the reusable rendering routine compiled from one source
// string. It holds no presenter state: a compiled Template is read-only and
// safe to render concurrently against independent presenter instances.
type Template struct {
	source   string
	segments []segment
	escape   escape.Func
}

// Option configures compilation.
type Option func(*Template)

// WithEscape injects the escaping function applied to every substituted
// value. Defaults to escape.HTML.
func WithEscape(f escape.Func) Option {
	return func(t *Template) {
		if f != nil {
			t.escape = f
		}
	}
}

// Compile scans source into its segment list. It never fails: unknown
// references surface at render time, not here, so templates can be compiled
// before the final presenter type is known.
func Compile(source string, options ...Option) *Template {
	t := &Template{
		source:   source,
		segments: scan(source),
		escape:   escape.HTML,
	}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Source returns the text the template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// References returns the template's reference names in extraction order,
// repeats included.
func (t *Template) References() []string {
	var out []string
	for _, seg := range t.segments {
		if seg.kind == referenceSegment {
			out = append(out, seg.text)
		}
	}
	return out
}

// RenderOption configures a single render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	blocks map[string]presenter.Block
}

// WithBlock binds a block to a reference name for one render. A block-style
// capability resolved under that name receives it; capabilities with no
// bound block receive a no-op block.
func WithBlock(name string, blk presenter.Block) RenderOption {
	return func(cfg *renderConfig) {
		if cfg.blocks == nil {
			cfg.blocks = make(map[string]presenter.Block)
		}
		cfg.blocks[name] = blk
	}
}

// Render evaluates the template against a bound presenter instance. Literal
// segments pass through untouched; each reference checks availability on p,
// invokes the capability, and appends the escaped result. The first
// reference p does not respond to aborts the render with
// InvalidReferenceError; capability side effects already performed are not
// rolled back.
func (t *Template) Render(p presenter.Presenter, options ...RenderOption) (string, error) {
	var cfg renderConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var out strings.Builder
	for _, seg := range t.segments {
		if seg.kind == literalSegment {
			out.WriteString(seg.text)
			continue
		}
		if !presenter.Available(p, seg.text) {
			return "", &InvalidReferenceError{Name: seg.text}
		}
		value, err := presenter.Invoke(p, seg.text, cfg.blocks[seg.text])
		if err != nil {
			return "", fmt.Errorf("template: reference %q: %w", seg.text, err)
		}
		out.WriteString(t.escape(coerce(value)))
	}
	return out.String(), nil
}

// Valid reports whether every reference in source is in the capability set
// of p's concrete type. It runs no presenter logic and ignores render-time
// availability overrides; use it at authoring or test time to catch typos
// before a render can fail.
func Valid(source string, p presenter.Presenter) bool {
	for _, name := range References(source) {
		if !presenter.HasMethod(p, name) {
			return false
		}
	}
	return true
}

// coerce renders a capability result as text. Strings pass through;
// anything else printable goes through fmt.
func coerce(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
