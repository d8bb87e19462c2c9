// Package vertex packs independently stored vertex attribute arrays into a
// single interleaved vertex buffer and describes the resulting layout.
//
// # Overview
//
// Meshes are often loaded as one array per attribute: positions, normals,
// texture coordinates. GPUs prefer one buffer holding one record per vertex.
// A [Builder] takes the attribute arrays in the order their fields should
// appear in a record, computes each field's byte offset and element count,
// and produces a [VertexBufferInfo] describing the layout together with a
// [VertexIter] that yields the interleaved bytes.
//
// # Quick Start
//
//	var (
//	    AttributePosition = vertex.NewAttribute("position", gputypes.VertexFormatFloat32x3)
//	    AttributeUV       = vertex.NewAttribute("uv", gputypes.VertexFormatFloat32x2)
//	)
//
//	positions := [][3]float32{{0.1, 1.2, 2.3}, {3.4, 4.5, 5.6}}
//	uvs := [][2]float32{{0.15, 1.0}, {0.72, 0.0}}
//
//	info, it, err := vertex.NewBuilder().
//	    Add(AttributePosition, vertex.Of(positions)).
//	    Add(AttributeUV, vertex.Of(uvs)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	data := it.Collect() // 40 bytes, info.Stride == 20
//
// # Formats
//
// Formats are [gputypes.VertexFormat] values; their byte sizes come from
// VertexFormat.Size. An attribute's element type may span several format
// elements (a [2][4]float32 as two Float32x4), but it must be a whole
// multiple of the format size. Violating that, or using a format without a
// size, panics: it is a mistake in how the attribute was declared, not a
// runtime condition.
//
// # Vertex counts
//
// All attributes passed to one Builder must hold the same number of
// vertices. Build reports a *VertexCountMismatchError otherwise; it never
// truncates.
//
// # Shader interfaces
//
// [VertexBufferInfo.Definition] checks a layout against the inputs of a
// vertex shader, as reflected by the shader subpackage, and returns the
// [gputypes.VertexBufferLayout] to use in a render pipeline.
//
// # Memory
//
// Sources are borrowed views: nothing is copied until the iterator is
// drained. The attribute arrays must outlive the iterator and must not be
// modified while it is read.
package vertex
