package vertex

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vertex/shader"
)

// Attribute names one typed slot of an interleaved vertex record.
//
// Attribute is a comparable value and can be used as a map key. It is
// usually declared once at package level:
//
//	var AttributePosition = vertex.NewAttribute("position", gputypes.VertexFormatFloat32x3)
type Attribute struct {
	// Name is matched against shader input names.
	Name string

	// Format is the element format the attribute bytes are interpreted as.
	Format gputypes.VertexFormat
}

// NewAttribute returns an Attribute with the given name and format.
func NewAttribute(name string, format gputypes.VertexFormat) Attribute {
	return Attribute{Name: name, Format: format}
}

func (a Attribute) String() string {
	return a.Name + ":" + a.Format.String()
}

// formatSize returns the byte size of f. A format without a size is a
// programming error.
func formatSize(f gputypes.VertexFormat) uint32 {
	size := f.Size()
	if size == 0 {
		panic(fmt.Sprintf("vertex: no block size for format %v (%d)", f, uint32(f)))
	}
	return uint32(size)
}

// formatsByName indexes every defined format by its lower-cased name.
var formatsByName = func() map[string]gputypes.VertexFormat {
	m := make(map[string]gputypes.VertexFormat)
	for f := gputypes.VertexFormatUint8x2; f <= gputypes.VertexFormatUnorm1010102; f++ {
		m[strings.ToLower(f.String())] = f
	}
	return m
}()

// ParseFormat resolves a format name as printed by VertexFormat.String,
// for example "Float32x3". Matching is case-insensitive.
func ParseFormat(name string) (gputypes.VertexFormat, error) {
	f, ok := formatsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return gputypes.VertexFormatUndefined, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// formatKind returns the shader base type a format is read as.
func formatKind(f gputypes.VertexFormat) shader.Kind {
	switch f {
	case gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint8x4,
		gputypes.VertexFormatUint16x2, gputypes.VertexFormatUint16x4,
		gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2,
		gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4:
		return shader.KindUint
	case gputypes.VertexFormatSint8x2, gputypes.VertexFormatSint8x4,
		gputypes.VertexFormatSint16x2, gputypes.VertexFormatSint16x4,
		gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4:
		return shader.KindSint
	case gputypes.VertexFormatUndefined:
		return shader.KindUnknown
	default:
		// Float, Unorm, Snorm and packed formats are all read as floats.
		return shader.KindFloat
	}
}
