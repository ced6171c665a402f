package vector

// Vector is a persistent sequence of T with O(log32 n) random access and
// amortized O(1) append at the end. The zero value is the empty vector.
//
// A Vector is immutable: Set, Push and Pop return a new Vector sharing
// all untouched trie nodes with the receiver, which stays valid and
// unchanged. Snapshots are therefore safe to share across goroutines.
type Vector[T any] struct {
	count int
	shift uint // 5 * (trie height - 1); 0 while root is nil or a leaf
	root  *node[T]
	tail  []T
}

// New returns a vector of the given elements. New() is the empty vector.
func New[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	for _, item := range items {
		v = v.Push(item)
	}
	return v
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.count
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.count == 0
}

// tailOffset returns the index of the first element stored in the tail.
// Every smaller index resolves through the trie.
func (v *Vector[T]) tailOffset() uint {
	if v.count == 0 {
		return 0
	}
	return uint(v.count-1) &^ chunkMask
}

// leafFor returns the 32-element buffer holding index i: either the tail
// or the leaf reached by consuming i five bits per level.
func (v *Vector[T]) leafFor(i uint) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	n := v.root
	for level := v.shift; level > 0; level -= chunkBits {
		n = n.children[(i>>level)&chunkMask]
	}
	return n.values
}

// Get returns the element at index i.
// It panics with ErrIndexOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= v.count {
		panic(ErrIndexOutOfRange)
	}
	return v.leafFor(uint(i))[uint(i)&chunkMask]
}

// Set returns a new vector with the element at index i replaced by val.
// Exactly the nodes on the path to i are cloned; every sibling subtree is
// shared with the receiver.
// It panics with ErrIndexOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) Set(i int, val T) *Vector[T] {
	if i < 0 || i >= v.count {
		panic(ErrIndexOutOfRange)
	}
	if uint(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint(i)&chunkMask] = val
		return &Vector[T]{count: v.count, shift: v.shift, root: v.root, tail: newTail}
	}
	return &Vector[T]{count: v.count, shift: v.shift, root: assoc(v.shift, v.root, uint(i), val), tail: v.tail}
}

// assoc clones the path from n down to index i and writes val into the
// cloned leaf.
func assoc[T any](level uint, n *node[T], i uint, val T) *node[T] {
	m := n.clone()
	if level == 0 {
		m.values[i&chunkMask] = val
	} else {
		idx := (i >> level) & chunkMask
		m.children[idx] = assoc(level-chunkBits, n.children[idx], i, val)
	}
	return m
}

// Push returns a new vector with val appended.
func (v *Vector[T]) Push(val T) *Vector[T] {
	// Room in the tail?
	if len(v.tail) < nodeWidth {
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(v.tail)] = val
		return &Vector[T]{count: v.count + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	// Full tail moves into the trie as a leaf.
	newTail := []T{val}

	// Empty trie: the old tail becomes the root.
	if v.root == nil {
		return &Vector[T]{count: v.count + 1, shift: 0, root: newLeaf(v.tail), tail: newTail}
	}

	// Root overflow: the current height cannot address one more leaf, so
	// grow by a level. The old root keeps slot 0 and the old tail hangs
	// off a fresh minimal spine in slot 1.
	if (uint(v.count) >> chunkBits) > (1 << v.shift) {
		newRoot := &node[T]{}
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, newLeaf[T](v.tail))
		return &Vector[T]{count: v.count + 1, shift: v.shift + chunkBits, root: newRoot, tail: newTail}
	}

	return &Vector[T]{count: v.count + 1, shift: v.shift, root: v.pushTail(v.shift, v.root), tail: newTail}
}

// pushTail hangs the current (full) tail off the next free leaf slot,
// cloning only the nodes along the way down.
func (v *Vector[T]) pushTail(level uint, n *node[T]) *node[T] {
	if level == 0 {
		return newLeaf(v.tail)
	}
	idx := (uint(v.count-1) >> level) & chunkMask
	m := n.clone()
	if child := n.children[idx]; child == nil {
		m.children[idx] = newPath(level-chunkBits, newLeaf[T](v.tail))
	} else {
		m.children[idx] = v.pushTail(level-chunkBits, child)
	}
	return m
}

// Pop returns a new vector with the last element removed.
// It panics with ErrEmptyVector when the vector is empty.
func (v *Vector[T]) Pop() *Vector[T] {
	if v.count == 0 {
		panic(ErrEmptyVector)
	}
	if v.count == 1 {
		return &Vector[T]{}
	}

	// The tail keeps at least one element: shrink it in place.
	if uint(v.count-1)&chunkMask > 0 {
		return &Vector[T]{count: v.count - 1, shift: v.shift, root: v.root, tail: cloneTail(v.tail, len(v.tail)-1)}
	}

	// The tail empties, so the rightmost trie leaf becomes the new tail.
	newTrieSize := uint(v.count) - nodeWidth - 1

	// The whole remaining trie is a single leaf: it becomes the tail.
	if newTrieSize == 0 {
		return &Vector[T]{count: v.count - 1, shift: 0, root: nil, tail: v.root.values}
	}

	// The trie shrank to the capacity of one less level.
	if newTrieSize == 1<<v.shift {
		return v.lowerTrie()
	}

	return v.popTrie(newTrieSize)
}

// lowerTrie removes the top trie level: slot 0 of the old root is the
// whole new trie and the leftmost leaf under slot 1 is the new tail.
func (v *Vector[T]) lowerTrie() *Vector[T] {
	n := v.root.children[1]
	for level := v.shift - chunkBits; level > 0; level -= chunkBits {
		n = n.children[0]
	}
	return &Vector[T]{count: v.count - 1, shift: v.shift - chunkBits, root: v.root.children[0], tail: n.values}
}

// popTrie unlinks the rightmost leaf without changing the trie height.
// diverges tells at which levels the removed index's path separates from
// the path of the new last trie index: above the divergence the nodes are
// cloned and followed, at the divergence the child slot is unlinked, and
// below it the original nodes are merely walked to find the leaf that
// becomes the new tail.
func (v *Vector[T]) popTrie(newTrieSize uint) *Vector[T] {
	var (
		diverges = newTrieSize ^ (newTrieSize - 1)
		diverged = false
		newRoot  = v.root.clone()
		n        = newRoot
	)
	for level := v.shift; level > 0; level -= chunkBits {
		idx := (newTrieSize >> level) & chunkMask
		child := n.children[idx]
		switch {
		case diverged:
			n = child
		case (diverges >> level) != 0:
			diverged = true
			n.children[idx] = nil
			n = child
		default:
			child = child.clone()
			n.children[idx] = child
			n = child
		}
	}
	return &Vector[T]{count: v.count - 1, shift: v.shift, root: newRoot, tail: n.values}
}

// Peek returns the last element. The second return value is false when
// the vector is empty.
func (v *Vector[T]) Peek() (T, bool) {
	if v.count == 0 {
		var zero T
		return zero, false
	}
	return v.Get(v.count - 1), true
}
