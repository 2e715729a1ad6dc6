package presenter

import (
	"reflect"
	"sort"
	"sync"
)

// The capability set of a type is computed once and cached keyed by its
// reflect.Type; adding methods to a new embedding type extends that type's
// set automatically with no registration step.
type registry struct {
	mu   sync.RWMutex
	sets map[reflect.Type]map[string]bool
}

var capabilities = &registry{sets: make(map[reflect.Type]map[string]bool)}

var (
	blockType = reflect.TypeOf(Block(nil))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	baseNames = methodNames(reflect.TypeOf(&Base{}))
)

func methodNames(t reflect.Type) map[string]bool {
	out := make(map[string]bool, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		out[t.Method(i).Name] = true
	}
	return out
}

// Methods returns the capability set of p's concrete type, sorted: every
// exported method taking no arguments (or a single Block) and returning one
// value (optionally with a trailing error), minus everything Base defines.
func Methods(p Presenter) []string {
	set := capabilitySet(p)
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasMethod reports type-level capability membership, ignoring any
// availability override. Valid checks use this so they stay independent of
// render-time narrowing.
func HasMethod(p Presenter, name string) bool {
	return capabilitySet(p)[name]
}

func capabilitySet(p Presenter) map[string]bool {
	t := reflect.TypeOf(p)

	capabilities.mu.RLock()
	set, ok := capabilities.sets[t]
	capabilities.mu.RUnlock()
	if ok {
		return set
	}

	capabilities.mu.Lock()
	defer capabilities.mu.Unlock()
	if set, ok := capabilities.sets[t]; ok {
		return set
	}

	set = make(map[string]bool)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if baseNames[m.Name] {
			continue
		}
		if capabilityShape(m.Type) {
			set[m.Name] = true
		}
	}
	capabilities.sets[t] = set
	return set
}

// capabilityShape reports whether an unbound method type matches a
// template-invocable operation: receiver plus no parameters or a single
// Block, one result or a result and an error.
func capabilityShape(ft reflect.Type) bool {
	switch ft.NumIn() {
	case 1:
	case 2:
		if ft.In(1) != blockType {
			return false
		}
	default:
		return false
	}
	switch ft.NumOut() {
	case 1:
		return ft.Out(0) != errorType
	case 2:
		return ft.Out(0) != errorType && ft.Out(1) == errorType
	default:
		return false
	}
}
