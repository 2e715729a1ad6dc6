// Package presenter defines the contract between templates and the objects
// that supply their reference values. A presenter exposes a capability set
// (the zero-argument exported methods of its concrete type), holds a fixed
// mapping of named inputs bound at construction, and falls back to a host
// context for operations it does not implement itself.
package presenter

import (
	"fmt"
	"time"
)

// Context is the host a presenter falls back to for operations it does not
// implement. Delegated calls are forwarded verbatim and their results
// returned as-is; delegated names are never part of the capability set.
type Context interface {
	Call(name string, args ...any) (any, error)
}

// Block is the continuation a block-style capability receives from the
// rendering routine. The capability decides whether and how often to run it;
// the routine does not interpret it.
type Block func() (string, error)

// NoBlock is passed to block-style capabilities when no block was bound to
// the reference.
func NoBlock() (string, error) {
	return "", nil
}

// Presenter is the surface the rendering pipeline needs from a bound
// presenter instance. Embedding Base satisfies it.
type Presenter interface {
	// Input returns the bound value for a declared input name.
	Input(name string) any
	// Context returns the host context the instance was bound to.
	Context() Context
	// CacheKey identifies the rendered fragment to an external cache layer.
	// Empty means do not cache.
	CacheKey() string
	// CacheDuration is the fragment TTL, meaningful only alongside a
	// non-empty CacheKey. Zero means no expiration.
	CacheDuration() time.Duration
}

// AvailabilityOverrider narrows which capability names respond at render
// time. Types that do not implement it expose their full capability set.
type AvailabilityOverrider interface {
	MethodAvailable(name string) bool
}

// MissingInputError reports a declared input absent from the construction
// mapping. Construction fails on the first missing name.
type MissingInputError struct {
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("presenter: missing required input %q", e.Name)
}

// Base carries the bound state every presenter shares. Concrete presenters
// embed it and call Bind from their constructors. Base methods are excluded
// from every capability set, so contract infrastructure is never
// referenceable from templates.
type Base struct {
	ctx    Context
	inputs map[string]any
}

// Bind validates inputs against schema and stores the bound state. It fails
// with MissingInputError on the first declared input absent from the
// mapping. Entries for undeclared names are kept but not validated.
func (b *Base) Bind(ctx Context, schema *Schema, inputs map[string]any) error {
	if schema != nil {
		for _, name := range schema.Names() {
			if _, ok := inputs[name]; !ok {
				return &MissingInputError{Name: name}
			}
		}
	}
	b.ctx = ctx
	b.inputs = inputs
	return nil
}

// Input returns the bound value for name, or nil when absent.
func (b *Base) Input(name string) any {
	return b.inputs[name]
}

// Inputs returns the bound input mapping. Callers must not mutate it.
func (b *Base) Inputs() map[string]any {
	return b.inputs
}

// Context returns the bound host context.
func (b *Base) Context() Context {
	return b.ctx
}

// CacheKey defaults to no caching.
func (b *Base) CacheKey() string {
	return ""
}

// CacheDuration defaults to no expiration.
func (b *Base) CacheDuration() time.Duration {
	return 0
}
