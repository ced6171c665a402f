package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_MatchesGet(t *testing.T) {
	t.Parallel()

	for _, size := range boundarySizes {
		size := size

		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			t.Parallel()

			var (
				v    = buildRange(size)
				it   = v.Iterator()
				seen = 0
			)

			for it.HasNext() {
				val, ok := it.Next()

				require.True(t, ok)
				require.Equal(t, v.Get(seen), val)

				seen++
			}

			require.Equal(t, size, seen)
		})
	}
}

func TestIterator_Exhausted(t *testing.T) {
	t.Parallel()

	it := New(1, 2).Iterator()

	it.Next()
	it.Next()

	assert.False(t, it.HasNext())

	for i := 0; i < 3; i++ {
		val, ok := it.Next()

		assert.Zero(t, val)
		assert.False(t, ok)
	}
}

func TestIterator_Independent(t *testing.T) {
	t.Parallel()

	v := buildRange(100)

	a := v.Iterator()
	b := v.Iterator()

	for i := 0; i < 50; i++ {
		a.Next()
	}

	val, ok := b.Next()

	assert.True(t, ok)
	assert.Equal(t, 0, val, "a second cursor must start from index 0")

	val, ok = a.Next()

	assert.True(t, ok)
	assert.Equal(t, 50, val)
}

func TestIterator_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	var (
		v  = buildRange(40)
		it = v.Iterator()
	)

	// Deriving new versions must not disturb a running cursor.
	_ = v.Push(-1)
	_ = v.Set(35, -1)

	for i := 0; i < 40; i++ {
		val, ok := it.Next()

		require.True(t, ok)
		require.Equal(t, i, val)
	}

	assert.False(t, it.HasNext())
}

func TestRange(t *testing.T) {
	t.Parallel()

	var (
		v    = buildRange(1056)
		next = 0
	)

	v.Range(func(i int, val int) bool {
		require.Equal(t, next, i)
		require.Equal(t, next, val)

		next++

		return true
	})

	assert.Equal(t, 1056, next)
}

func TestRange_EarlyStop(t *testing.T) {
	t.Parallel()

	var (
		v     = buildRange(100)
		calls = 0
	)

	v.Range(func(i int, _ int) bool {
		calls++
		return i < 2
	})

	assert.Equal(t, 3, calls)
}
