package presenter

import (
	"fmt"
	"reflect"
)

// Available reports whether name responds on p at render time. Types
// implementing AvailabilityOverrider decide themselves; everything else
// answers with capability-set membership.
func Available(p Presenter, name string) bool {
	if o, ok := p.(AvailabilityOverrider); ok {
		return o.MethodAvailable(name)
	}
	return capabilitySet(p)[name]
}

// Invoke calls the named capability on p and returns the raw result.
// Block-style capabilities receive blk, or NoBlock when blk is nil;
// zero-argument capabilities ignore it. A trailing error result aborts the
// invoke.
func Invoke(p Presenter, name string, blk Block) (any, error) {
	if !capabilitySet(p)[name] {
		return nil, fmt.Errorf("presenter: no capability %q", name)
	}
	m := reflect.ValueOf(p).MethodByName(name)

	var args []reflect.Value
	if m.Type().NumIn() == 1 {
		if blk == nil {
			blk = NoBlock
		}
		args = []reflect.Value{reflect.ValueOf(blk)}
	}

	out := m.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// Call is the two-tier dispatch presenter authors use to reach
// host-provided operations: name resolves against p's own capability set
// first and is forwarded to the host context otherwise. Forwarded results
// come back as-is.
func Call(p Presenter, name string, args ...any) (any, error) {
	if len(args) == 0 && capabilitySet(p)[name] {
		return Invoke(p, name, nil)
	}
	ctx := p.Context()
	if ctx == nil {
		return nil, fmt.Errorf("presenter: no host context to answer %q", name)
	}
	return ctx.Call(name, args...)
}
