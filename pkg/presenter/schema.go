package presenter

// Schema is the ordered set of input names a presenter type requires at
// construction. Composed presenter types extend the schema of the type they
// embed, so required inputs accumulate along the embedding chain the same
// way promoted methods do.
type Schema struct {
	names []string
}

// NewSchema declares the required inputs of a root presenter type.
func NewSchema(names ...string) *Schema {
	s := &Schema{}
	return s.Extend(names...)
}

// Extend returns a new Schema requiring the receiver's inputs plus names.
// The receiver is not modified. Duplicates collapse onto their first
// position.
func (s *Schema) Extend(names ...string) *Schema {
	out := &Schema{names: append([]string(nil), s.names...)}
	for _, name := range names {
		if !out.requires(name) {
			out.names = append(out.names, name)
		}
	}
	return out
}

func (s *Schema) requires(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns the required input names in declaration order, ancestors
// first.
func (s *Schema) Names() []string {
	return append([]string(nil), s.names...)
}
