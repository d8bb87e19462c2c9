package vertex

import (
	"sort"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vertex/shader"
)

// Definition links the layout to a vertex shader's input interface and
// returns the buffer layout a render pipeline needs.
//
// Every shader input must have a member of the same name
// (*MissingAttributeError), and that member must span as many elements as
// the input has locations and be read as the same base type
// (*FormatMismatchError). Members the shader does not use are left out of
// the returned attributes but still count towards the stride. A nil iface
// returns ErrNoShaderInterface.
func (info *VertexBufferInfo) Definition(iface *shader.Interface) (gputypes.VertexBufferLayout, error) {
	if iface == nil {
		return gputypes.VertexBufferLayout{}, ErrNoShaderInterface
	}
	layout := gputypes.VertexBufferLayout{
		ArrayStride: uint64(info.Stride),
		StepMode:    info.StepMode,
	}

	for _, entry := range iface.Entries {
		m, ok := info.Members[entry.Name]
		if !ok {
			return gputypes.VertexBufferLayout{}, &MissingAttributeError{Attribute: entry.Name}
		}

		locations := entry.Locations
		if locations == 0 {
			locations = 1
		}
		if m.NumElements != locations || formatKind(m.Format) != entry.Kind {
			return gputypes.VertexBufferLayout{}, &FormatMismatchError{
				Attribute:  entry.Name,
				Shader:     entry,
				Definition: m,
			}
		}

		offset := uint64(m.Offset)
		step := uint64(formatSize(m.Format))
		for loc := entry.Location; loc < entry.Location+locations; loc++ {
			layout.Attributes = append(layout.Attributes, gputypes.VertexAttribute{
				Format:         m.Format,
				Offset:         offset,
				ShaderLocation: loc,
			})
			offset += step
		}
	}

	sort.Slice(layout.Attributes, func(i, j int) bool {
		return layout.Attributes[i].ShaderLocation < layout.Attributes[j].ShaderLocation
	})

	Logger().Debug("vertex: definition matched",
		"entryPoint", iface.EntryPoint,
		"inputs", len(iface.Entries),
		"attributes", len(layout.Attributes))

	return layout, nil
}
