package vertex

import (
	"math"
	"unsafe"
)

// Source is a borrowed byte view of one attribute array.
//
// Source does not copy. The array it views must stay alive and unmodified
// until every VertexIter built from it has been drained.
type Source struct {
	data     []byte
	elemSize uint32
}

// Of returns a byte view of data without copying it. Each element of data
// is one vertex; its size is unsafe.Sizeof(T). T must be plain data with no
// pointers, and the bytes are in host byte order.
//
//	positions := [][3]float32{{0, 1, 2}, {3, 4, 5}}
//	src := vertex.Of(positions) // ElementSize() == 12
func Of[T any](data []T) Source {
	var zero T
	size := unsafe.Sizeof(zero)
	if uint64(size) > math.MaxUint32 {
		panic("vertex: element size exceeds 4 GiB")
	}
	if len(data) == 0 {
		return Source{elemSize: uint32(size)}
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), uintptr(len(data))*size) //nolint:gosec // plain-data view
	return Source{data: b, elemSize: uint32(size)}
}

// Bytes returns a view of raw attribute bytes where every elemSize bytes
// form one vertex. Trailing bytes that do not fill an element are ignored.
// Bytes panics unless 0 < elemSize <= math.MaxUint32.
func Bytes(data []byte, elemSize int) Source {
	if elemSize <= 0 {
		panic("vertex: element size must be positive")
	}
	if uint64(elemSize) > math.MaxUint32 {
		panic("vertex: element size exceeds 4 GiB")
	}
	return Source{data: data, elemSize: uint32(elemSize)}
}

// Len returns the number of whole elements in the view.
func (s Source) Len() int {
	if s.elemSize == 0 {
		return 0
	}
	return len(s.data) / int(s.elemSize)
}

// ElementSize returns the byte size of one element.
func (s Source) ElementSize() uint32 {
	return s.elemSize
}
