// Package vector implements a persistent (immutable, structurally shared)
// vector backed by a 32-way bit-mapped trie.
//
// A vector is a snapshot of four fields:
// ------------------------------------
//
//   - count - total number of elements;
//   - shift - 5 * (height-1) of the trie, 0 while everything fits in the tail;
//   - root  - the trie holding all elements except the trailing ones;
//   - tail  - a dense buffer of up to 32 recently appended elements.
//
// Every index is decomposed into 5-bit slices, one slice per trie level:
//
//	level 2:  (i >> 10) & 31
//	level 1:  (i >>  5) & 31
//	level 0:   i        & 31   (slot inside a leaf)
//
// Interior nodes hold 32 child references; leaves hold 32 elements. Indices
// at or beyond the tail offset ((count-1) &^ 31) bypass the trie and read
// the tail directly, which is what makes Push amortized O(1): 31 out of
// every 32 appends only copy the tail buffer.
//
// Mutating operations (Set, Push, Pop) never modify an existing node.
// They clone the nodes on the single root-to-leaf path they touch and
// share every sibling subtree by reference with the previous snapshot, so
// deriving a new version costs O(log32 n) time and allocation while all
// older versions stay valid. Because published nodes are never written
// again, any number of goroutines may read, iterate and derive new
// vectors from shared snapshots without locks.
//
// Sequential access should go through Iterator or Range rather than
// repeated Get: the cursor caches the current leaf and its ancestors and
// refreshes only the levels that change between leaf boundaries, making a
// full traversal O(n) instead of O(n log32 n).
package vector
