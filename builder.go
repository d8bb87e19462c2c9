package vertex

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
)

// member is one attribute registered with a Builder.
type member struct {
	name string
	info MemberInfo
	src  Source
}

// Builder accumulates attributes and packs them into interleaved records.
// Each attribute occupies the bytes after the previously added one, so the
// order of Add calls determines the record layout.
//
//	info, it, err := vertex.NewBuilder().
//		Add(AttributePosition, vertex.Of(positions)).
//		Add(AttributeUV, vertex.Of(uvs)).
//		Build()
//
// A Builder borrows the attribute arrays and is consumed by Build. It is
// not safe for concurrent use.
type Builder struct {
	members  []member
	names    map[string]struct{}
	offset   uint32
	stepMode gputypes.VertexStepMode
	built    bool
}

// NewBuilder returns an empty per-vertex Builder.
func NewBuilder() *Builder {
	return &Builder{
		names:    make(map[string]struct{}),
		stepMode: gputypes.VertexStepModeVertex,
	}
}

// Add registers attr backed by src at the current end of the record.
//
// Add panics if the element size of src is not a whole multiple of the
// byte size of attr.Format, if the format has no byte size, or if the
// name is empty or already registered. It also panics if the record
// stride would exceed 4 GiB.
func (b *Builder) Add(attr Attribute, src Source) *Builder {
	b.checkUsable()
	if attr.Name == "" {
		panic("vertex: attribute name must not be empty")
	}
	if _, dup := b.names[attr.Name]; dup {
		panic(fmt.Sprintf("vertex: attribute %q registered twice", attr.Name))
	}

	fieldSize := src.ElementSize()
	if fieldSize == 0 {
		panic(fmt.Sprintf("vertex: attribute %q has zero-sized elements", attr.Name))
	}
	fmtSize := formatSize(attr.Format)
	if fieldSize%fmtSize != 0 {
		panic(fmt.Sprintf("vertex: type of buffer elements for attribute %q (%d bytes) does not fit provided format %v (%d bytes)",
			attr.Name, fieldSize, attr.Format, fmtSize))
	}

	next := uint64(b.offset) + uint64(fieldSize)
	if next > math.MaxUint32 {
		panic(fmt.Sprintf("vertex: record stride exceeds 4 GiB at attribute %q", attr.Name))
	}

	b.members = append(b.members, member{
		name: attr.Name,
		info: MemberInfo{
			Offset:      b.offset,
			Format:      attr.Format,
			NumElements: fieldSize / fmtSize,
		},
		src: src,
	})
	b.names[attr.Name] = struct{}{}
	b.offset = uint32(next)
	return b
}

// StepMode selects whether the records advance per vertex (the default) or
// per instance.
func (b *Builder) StepMode(mode gputypes.VertexStepMode) *Builder {
	b.checkUsable()
	switch mode {
	case gputypes.VertexStepModeVertex, gputypes.VertexStepModeInstance:
	default:
		panic(fmt.Sprintf("vertex: unsupported step mode %v", mode))
	}
	b.stepMode = mode
	return b
}

// Build finalizes the layout and returns its descriptor together with a
// sequence over the interleaved bytes.
//
// Every attribute must hold the same number of elements; otherwise Build
// returns a *VertexCountMismatchError and no sequence. Build consumes the
// Builder: any further call panics.
func (b *Builder) Build() (*VertexBufferInfo, *VertexIter, error) {
	b.checkUsable()
	b.built = true

	if len(b.members) == 0 {
		return nil, nil, ErrNoAttributes
	}

	numVertices := b.members[0].src.Len()
	mismatch := false
	for _, m := range b.members[1:] {
		if m.src.Len() != numVertices {
			mismatch = true
			break
		}
	}
	if mismatch {
		counts := make([]MemberCount, len(b.members))
		for i, m := range b.members {
			counts[i] = MemberCount{Name: m.name, Count: m.src.Len()}
		}
		return nil, nil, &VertexCountMismatchError{Counts: counts}
	}

	info := &VertexBufferInfo{
		Members:  make(map[string]MemberInfo, len(b.members)),
		Stride:   b.offset,
		StepMode: b.stepMode,
	}
	ranges := make([]memberRange, len(b.members))
	views := make([][]byte, len(b.members))
	for i, m := range b.members {
		info.Members[m.name] = m.info
		end := b.offset
		if i+1 < len(b.members) {
			end = b.members[i+1].info.Offset
		}
		ranges[i] = memberRange{start: int(m.info.Offset), end: int(end)}
		views[i] = m.src.data
	}

	it := &VertexIter{
		ranges: ranges,
		views:  views,
		stride: int(b.offset),
		length: int(b.offset) * numVertices,
	}

	Logger().Debug("vertex: layout built",
		"members", len(b.members),
		"stride", info.Stride,
		"vertices", numVertices,
		"stepMode", info.StepMode.String())

	b.members = nil
	b.names = nil
	return info, it, nil
}

func (b *Builder) checkUsable() {
	if b.built {
		panic("vertex: Builder used after Build")
	}
}
