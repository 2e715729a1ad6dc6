package template

import "fmt"

// InvalidReferenceError aborts a render when a template references a name
// the presenter does not respond to. It carries the offending name so
// callers can report which reference to fix. There is no partial-output
// mode; the whole render fails.
type InvalidReferenceError struct {
	Name string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("template: invalid reference {{%s}}", e.Name)
}
