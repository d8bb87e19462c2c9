package vertex

import (
	"fmt"
	"sort"

	"github.com/gogpu/gputypes"
)

// MemberInfo describes where one attribute lives inside a record.
type MemberInfo struct {
	// Offset is the byte offset of the member from the start of a record.
	Offset uint32

	// Format is the element format of the member.
	Format gputypes.VertexFormat

	// NumElements is the number of Format elements the member spans.
	NumElements uint32
}

// Size returns the byte size of the member.
func (m MemberInfo) Size() uint32 {
	return m.NumElements * formatSize(m.Format)
}

// VertexBufferInfo describes the record layout produced by a Builder.
// Member ranges are contiguous and cover [0, Stride) exactly.
type VertexBufferInfo struct {
	// Members maps attribute names to their placement.
	Members map[string]MemberInfo

	// Stride is the byte size of one record.
	Stride uint32

	// StepMode is VertexStepModeVertex or VertexStepModeInstance.
	StepMode gputypes.VertexStepMode
}

// Names returns the member names in record order.
func (info *VertexBufferInfo) Names() []string {
	names := make([]string, 0, len(info.Members))
	for name := range info.Members {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return info.Members[names[i]].Offset < info.Members[names[j]].Offset
	})
	return names
}

// VertexCount returns the number of records in a packed buffer.
func (info *VertexBufferInfo) VertexCount(data []byte) (int, error) {
	if info.Stride == 0 || len(data)%int(info.Stride) != 0 {
		return 0, fmt.Errorf("%w: %d bytes, stride %d", ErrTruncatedBuffer, len(data), info.Stride)
	}
	return len(data) / int(info.Stride), nil
}

// Extract copies the bytes of one member out of every record of a packed
// buffer, reversing the interleaving for that member.
func (info *VertexBufferInfo) Extract(data []byte, name string) ([]byte, error) {
	m, ok := info.Members[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}
	count, err := info.VertexCount(data)
	if err != nil {
		return nil, err
	}

	size := int(m.Size())
	stride := int(info.Stride)
	out := make([]byte, 0, count*size)
	for v := 0; v < count; v++ {
		start := v*stride + int(m.Offset)
		out = append(out, data[start:start+size]...)
	}
	return out, nil
}
