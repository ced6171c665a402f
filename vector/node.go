package vector

const (
	chunkBits = 5              // index bits consumed per trie level
	nodeWidth = 1 << chunkBits // 32 slots per node
	chunkMask = nodeWidth - 1  // 0x1f
)

// node is a single trie node. An interior node uses children and leaves
// values nil; a leaf uses values (always nodeWidth long) and leaves every
// child slot nil. A node does not know its own level - the traversal
// depth supplies it.
type node[T any] struct {
	children [nodeWidth]*node[T]
	values   []T
}

func newLeaf[T any](values []T) *node[T] {
	return &node[T]{values: values}
}

// clone makes a shallow copy: child references are copied slot by slot,
// leaf values into a fresh buffer. Subtrees stay shared.
func (n *node[T]) clone() *node[T] {
	m := &node[T]{children: n.children}
	if n.values != nil {
		m.values = make([]T, len(n.values))
		copy(m.values, n.values)
	}
	return m
}

// newPath builds a left-branching spine of the given level with leaf as
// its only descendant.
func newPath[T any](level uint, leaf *node[T]) *node[T] {
	if level == 0 {
		return leaf
	}
	n := &node[T]{}
	n.children[0] = newPath(level-chunkBits, leaf)
	return n
}

func cloneTail[T any](tail []T, size int) []T {
	newTail := make([]T, size)
	copy(newTail, tail)
	return newTail
}
