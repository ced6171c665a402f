package vector

import "math/bits"

// Cursor is a forward-only traversal over one vector snapshot. It caches
// the leaf currently being read plus one ancestor node per interior trie
// level, and on each leaf boundary refreshes only the levels whose index
// bits actually changed, so a full pass costs O(n) instead of the
// O(n log32 n) of repeated Get calls.
//
// A Cursor is not restartable and carries mutable position state, so it
// must not be shared between goroutines. Distinct Cursors over the same
// vector are independent.
type Cursor[T any] struct {
	vec  *Vector[T]
	pos  uint // next index to produce
	jump uint // next leaf boundary, always a multiple of 32
	leaf []T
	// stack[i] is the cached ancestor at level (i+1)*chunkBits;
	// stack[len-1] is the root and never changes.
	stack []*node[T]
}

// Iterator returns a new Cursor positioned at index 0.
func (v *Vector[T]) Iterator() *Cursor[T] {
	it := &Cursor[T]{vec: v, jump: nodeWidth}
	switch {
	case v.count <= nodeWidth:
		// Everything lives in the tail.
		it.leaf = v.tail
	case v.count <= 2*nodeWidth:
		// The trie is a single leaf.
		it.leaf = v.root.values
	default:
		it.stack = make([]*node[T], v.shift/chunkBits)
		it.stack[len(it.stack)-1] = v.root
		for i := len(it.stack) - 2; i >= 0; i-- {
			it.stack[i] = it.stack[i+1].children[0]
		}
		it.leaf = it.stack[0].children[0].values
	}
	return it
}

// HasNext reports whether Next will produce another element.
func (it *Cursor[T]) HasNext() bool {
	return it.pos < uint(it.vec.count)
}

// Next returns the element at the current position and advances by one.
// The second return value is false once the cursor is exhausted.
func (it *Cursor[T]) Next() (T, bool) {
	if it.pos >= uint(it.vec.count) {
		var zero T
		return zero, false
	}
	if it.pos == it.jump {
		it.advance()
		it.jump += nodeWidth
	}
	val := it.leaf[it.pos&chunkMask]
	it.pos++
	return val, true
}

// advance moves the cached leaf across a 32-aligned boundary. The xor of
// the old and new position has set bits exactly up to the highest index
// bit that changed; each whole chunk of those bits above the leaf level
// marks one stale stack entry. Stale entries are refreshed top-down from
// the first still-valid ancestor.
func (it *Cursor[T]) advance() {
	v := it.vec
	if it.pos == v.tailOffset() {
		it.leaf = v.tail
		return
	}
	diverges := it.pos ^ (it.pos - 1)
	top := bits.Len(diverges)/chunkBits - 2
	if top > len(it.stack)-2 {
		top = len(it.stack) - 2
	}
	for i := top; i >= 0; i-- {
		it.stack[i] = it.stack[i+1].children[(it.pos>>uint((i+2)*chunkBits))&chunkMask]
	}
	it.leaf = it.stack[0].children[(it.pos>>chunkBits)&chunkMask].values
}

// Range calls f with each index and element in order until f returns
// false or the vector is exhausted.
func (v *Vector[T]) Range(f func(i int, val T) bool) {
	it := v.Iterator()
	for i := 0; ; i++ {
		val, ok := it.Next()
		if !ok || !f(i, val) {
			return
		}
	}
}
