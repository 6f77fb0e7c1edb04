package graphics

import "fmt"

// DefaultGrow is the growth increment used when none is given.
const DefaultGrow = 8192

// VertexBuffer is a growable vertex store reused across frames. Used never
// exceeds Cap; growth preserves the used region.
type VertexBuffer[T any] struct {
	data []T
	used int
	grow int
}

// NewVertexBuffer allocates a buffer whose initial capacity and growth
// increment are both grow.
func NewVertexBuffer[T any](grow int) *VertexBuffer[T] {
	if grow <= 0 {
		grow = DefaultGrow
	}
	return &VertexBuffer[T]{
		data: make([]T, grow),
		grow: grow,
	}
}

// Alloc reserves n records at the end of the used region and returns them
// for writing. The returned slice is only valid until the next Alloc that
// has to grow the buffer.
func (b *VertexBuffer[T]) Alloc(n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("graphics: negative vertex allocation %d", n))
	}
	if len(b.data)-b.used < n {
		b.realloc(b.used + n)
	}
	v := b.data[b.used : b.used+n : b.used+n]
	b.used += n
	return v
}

func (b *VertexBuffer[T]) realloc(target int) {
	capacity := len(b.data) + b.grow
	if capacity < target {
		capacity = target
	}
	data := make([]T, capacity)
	copy(data, b.data[:b.used])
	b.data = data
}

// Clear empties the buffer but keeps its storage.
func (b *VertexBuffer[T]) Clear() {
	b.used = 0
}

// Used returns the number of allocated records.
func (b *VertexBuffer[T]) Used() int { return b.used }

// Cap returns the number of records the buffer can hold without growing.
func (b *VertexBuffer[T]) Cap() int { return len(b.data) }

// Vertices returns the used region, ready for upload.
func (b *VertexBuffer[T]) Vertices() []T {
	return b.data[:b.used]
}

// Vertex returns the i-th used record.
func (b *VertexBuffer[T]) Vertex(i int) (T, error) {
	if i < 0 || i >= b.used {
		var zero T
		return zero, fmt.Errorf("%w: %d (used %d)", ErrVertexIndex, i, b.used)
	}
	return b.data[i], nil
}
