package curly

import (
	"github.com/templatekit/go-curly/pkg/escape"
	"github.com/templatekit/go-curly/pkg/presenter"
	"github.com/templatekit/go-curly/pkg/template"
)

// Template aliases the compiled routine type exported by pkg/template.
type Template = template.Template

// Option configures compilation; see pkg/template.
type Option = template.Option

// RenderOption configures a single render; see pkg/template.
type RenderOption = template.RenderOption

// InvalidReferenceError is returned when a render hits a reference the
// presenter does not respond to.
type InvalidReferenceError = template.InvalidReferenceError

// Presenter is the bound-instance surface consumed by compiled templates.
type Presenter = presenter.Presenter

// Context is the host a presenter delegates unknown operations to.
type Context = presenter.Context

// Block is the continuation passed to block-style capabilities.
type Block = presenter.Block

// Base is embedded by concrete presenter types.
type Base = presenter.Base

// Schema declares the inputs a presenter type requires at construction.
type Schema = presenter.Schema

// EscapeFunc is the escaping contract applied to substituted values.
type EscapeFunc = escape.Func

// Compile produces the reusable rendering routine for source. It never
// fails; unknown references surface at render time.
func Compile(source string, options ...Option) *Template {
	return template.Compile(source, options...)
}

// Valid reports whether every reference in source is in the capability set
// of p's type. Use it at authoring or test time to catch typos before a
// render can fail.
func Valid(source string, p Presenter) bool {
	return template.Valid(source, p)
}

// Render compiles source and renders it against p in one step with the
// default HTML escaper. Callers rendering the same source repeatedly should
// compile once or use a render.Manager.
func Render(source string, p Presenter, options ...RenderOption) (string, error) {
	return template.Compile(source).Render(p, options...)
}

// NewSchema declares the required inputs of a root presenter type.
func NewSchema(names ...string) *Schema {
	return presenter.NewSchema(names...)
}

// Methods returns the capability set of p's concrete type, sorted.
func Methods(p Presenter) []string {
	return presenter.Methods(p)
}

// WithEscape injects the escaping function used for substituted values.
func WithEscape(f EscapeFunc) Option {
	return template.WithEscape(f)
}

// WithBlock binds a block to a reference name for one render.
func WithBlock(name string, blk Block) RenderOption {
	return template.WithBlock(name, blk)
}
