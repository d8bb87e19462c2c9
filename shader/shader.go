// Package shader describes the vertex inputs a shader expects and reflects
// them from WGSL source.
package shader

// Kind is the base type a vertex input is read as in the shader.
type Kind uint8

const (
	// KindUnknown is an unrecognized base type.
	KindUnknown Kind = iota
	// KindFloat covers f32 inputs, including normalized formats.
	KindFloat
	// KindSint covers i32 inputs.
	KindSint
	// KindUint covers u32 inputs.
	KindUint
)

// String returns the WGSL scalar name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "f32"
	case KindSint:
		return "i32"
	case KindUint:
		return "u32"
	default:
		return "unknown"
	}
}

// Entry is one located vertex input.
type Entry struct {
	// Name is the argument or struct member name.
	Name string

	// Location is the first @location the input occupies.
	Location uint32

	// Kind is the scalar base type.
	Kind Kind

	// Components is the vector width (1 for scalars).
	Components uint32

	// Locations is the number of consecutive locations the input spans.
	// WGSL inputs always use one.
	Locations uint32
}

// Interface is the set of vertex inputs of one entry point, ordered by
// location.
type Interface struct {
	EntryPoint string
	Entries    []Entry
}

// Lookup returns the entry with the given name.
func (i *Interface) Lookup(name string) (Entry, bool) {
	for _, e := range i.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
