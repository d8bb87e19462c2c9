package vertex

import (
	"io"
	"iter"
	"sort"
)

// memberRange is the [start, end) byte range of one member within a record.
type memberRange struct {
	start, end int
}

// VertexIter produces the interleaved bytes of a layout, one record per
// vertex in member order. It is created by Builder.Build and can be drained
// once; it reads the borrowed attribute arrays lazily and does not allocate.
//
// Next and Read share one cursor and may be mixed. VertexIter is not safe
// for concurrent use.
type VertexIter struct {
	ranges []memberRange
	views  [][]byte
	stride int
	length int
	cursor int
	member int
}

// Len returns the number of bytes not yet produced.
func (it *VertexIter) Len() int {
	return it.length - it.cursor
}

// Next returns the next byte. Once all bytes have been produced it returns
// false on every call.
func (it *VertexIter) Next() (byte, bool) {
	if it.cursor >= it.length {
		return 0, false
	}
	vertexIndex := it.cursor / it.stride
	dataOffset := it.cursor % it.stride

	// Offsets increase within a record and wrap to zero at the next one, so
	// the cached member only ever moves forward or back to the first.
	r := it.ranges[it.member]
	if dataOffset < r.start || dataOffset >= r.end {
		it.member++
		if it.member == len(it.ranges) || dataOffset < it.ranges[it.member].start {
			it.member = 0
		}
		r = it.ranges[it.member]
	}

	fieldSize := r.end - r.start
	b := it.views[it.member][vertexIndex*fieldSize+dataOffset-r.start]
	it.cursor++
	return b, true
}

// Read implements io.Reader. It copies whole member spans at a time and
// returns io.EOF once the sequence is exhausted.
func (it *VertexIter) Read(p []byte) (int, error) {
	if it.cursor >= it.length {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && it.cursor < it.length {
		vertexIndex := it.cursor / it.stride
		dataOffset := it.cursor % it.stride
		idx := it.memberAt(dataOffset)
		r := it.ranges[idx]

		fieldSize := r.end - r.start
		src := it.views[idx][vertexIndex*fieldSize+dataOffset-r.start : (vertexIndex+1)*fieldSize]
		c := copy(p[n:], src)
		n += c
		it.cursor += c
		it.member = idx
	}
	return n, nil
}

// WriteTo implements io.WriterTo by draining the remaining bytes into w.
func (it *VertexIter) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for it.cursor < it.length {
		vertexIndex := it.cursor / it.stride
		dataOffset := it.cursor % it.stride
		idx := it.memberAt(dataOffset)
		r := it.ranges[idx]

		fieldSize := r.end - r.start
		n, err := w.Write(it.views[idx][vertexIndex*fieldSize+dataOffset-r.start : (vertexIndex+1)*fieldSize])
		total += int64(n)
		it.cursor += n
		it.member = idx
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Collect drains the remaining bytes into a new slice of exactly Len bytes.
func (it *VertexIter) Collect() []byte {
	out := make([]byte, it.Len())
	n, _ := io.ReadFull(it, out)
	return out[:n]
}

// All returns an iterator over the remaining bytes. Breaking out of the
// loop leaves the unread bytes in the sequence.
func (it *VertexIter) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, ok := it.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// memberAt returns the index of the member whose range holds offset.
func (it *VertexIter) memberAt(offset int) int {
	return sort.Search(len(it.ranges), func(i int) bool {
		return it.ranges[i].end > offset
	})
}
