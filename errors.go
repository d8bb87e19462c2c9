package vertex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/vertex/shader"
)

var (
	// ErrNoAttributes is returned by Build when no attribute was added.
	ErrNoAttributes = errors.New("vertex: no attributes registered")

	// ErrVertexCountMismatch is matched by *VertexCountMismatchError.
	ErrVertexCountMismatch = errors.New("vertex: attribute vertex counts differ")

	// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
	ErrUnknownFormat = errors.New("vertex: unknown vertex format")

	// ErrUnknownMember is returned when a name is not part of a layout.
	ErrUnknownMember = errors.New("vertex: unknown member")

	// ErrTruncatedBuffer is returned when a packed buffer is not a whole
	// number of records.
	ErrTruncatedBuffer = errors.New("vertex: buffer length is not a multiple of the stride")

	// ErrNoShaderInterface is returned by Definition for a nil interface.
	ErrNoShaderInterface = errors.New("vertex: no shader interface")

	// ErrMissingAttribute is matched by *MissingAttributeError.
	ErrMissingAttribute = errors.New("vertex: an attribute is missing")

	// ErrFormatMismatch is matched by *FormatMismatchError.
	ErrFormatMismatch = errors.New("vertex: the format of an attribute does not match")
)

// MemberCount is the number of whole elements one attribute source holds.
type MemberCount struct {
	Name  string
	Count int
}

// VertexCountMismatchError reports attribute sources that do not agree on
// the number of vertices. Counts is in registration order.
type VertexCountMismatchError struct {
	Counts []MemberCount
}

func (e *VertexCountMismatchError) Error() string {
	parts := make([]string, len(e.Counts))
	for i, c := range e.Counts {
		parts[i] = fmt.Sprintf("%s=%d", c.Name, c.Count)
	}
	return "vertex: attribute vertex counts differ (" + strings.Join(parts, ", ") + ")"
}

// Is reports whether target is ErrVertexCountMismatch.
func (e *VertexCountMismatchError) Is(target error) bool {
	return target == ErrVertexCountMismatch
}

// MissingAttributeError reports a shader input with no matching member.
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("vertex: attribute %q required by the shader is missing", e.Attribute)
}

// Is reports whether target is ErrMissingAttribute.
func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// FormatMismatchError reports a member whose format or element count does
// not fit the shader input of the same name.
type FormatMismatchError struct {
	Attribute  string
	Shader     shader.Entry
	Definition MemberInfo
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("vertex: attribute %q: layout has %d x %v, shader expects %d location(s) of %v",
		e.Attribute, e.Definition.NumElements, e.Definition.Format, e.Shader.Locations, e.Shader.Kind)
}

// Is reports whether target is ErrFormatMismatch.
func (e *FormatMismatchError) Is(target error) bool {
	return target == ErrFormatMismatch
}
