package vertex

import (
	"io"
	"testing"
)

func benchmarkSources(n int) ([][3]float32, [][2]float32) {
	positions := make([][3]float32, n)
	uvs := make([][2]float32, n)
	for i := range n {
		positions[i] = [3]float32{0.1, 1.2, 2.3}
		uvs[i] = [2]float32{0.15, 1.0}
	}
	return positions, uvs
}

func BenchmarkVertexIter_Next(b *testing.B) {
	positions, uvs := benchmarkSources(1024)
	b.SetBytes(int64(len(positions) * 20))
	b.ReportAllocs()
	for b.Loop() {
		_, it, _ := NewBuilder().
			Add(testPosition, Of(positions)).
			Add(testUV, Of(uvs)).
			Build()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkVertexIter_Collect(b *testing.B) {
	positions, uvs := benchmarkSources(1024)
	b.SetBytes(int64(len(positions) * 20))
	b.ReportAllocs()
	for b.Loop() {
		_, it, _ := NewBuilder().
			Add(testPosition, Of(positions)).
			Add(testUV, Of(uvs)).
			Build()
		_ = it.Collect()
	}
}

func BenchmarkVertexIter_WriteTo(b *testing.B) {
	positions, uvs := benchmarkSources(1024)
	b.SetBytes(int64(len(positions) * 20))
	b.ReportAllocs()
	for b.Loop() {
		_, it, _ := NewBuilder().
			Add(testPosition, Of(positions)).
			Add(testUV, Of(uvs)).
			Build()
		_, _ = it.WriteTo(io.Discard)
	}
}
