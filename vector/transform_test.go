package vector

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	var (
		v = New(1, 2, 3, 4, 5).Append(6, 7, 8)
		w = New(1, 2, 3, 4, 5, 6, 7, 8)
	)

	require.True(t, Equal(v, w))
	assert.Equal(t, 36, Reduce(v, 0, func(acc, x int) int { return acc + x }))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, v.ToSlice())
}

func TestPop_Scenario(t *testing.T) {
	t.Parallel()

	v := New(1, 2, 3).Pop()

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2, v.Get(1))
}

func TestMap(t *testing.T) {
	t.Parallel()

	v := Map(New(1, 2, 3), strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, v.ToSlice())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	v := Filter(buildRange(10), func(x int) bool { return x%2 == 0 })

	assert.Equal(t, []int{0, 2, 4, 6, 8}, v.ToSlice())
}

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := Reduce(buildRange(101), 0, func(acc, x int) int { return acc + x })

	assert.Equal(t, 5050, sum)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name string
		A, B *Vector[int]
		Exp  bool
	}{
		{"both empty", New[int](), New[int](), true},
		{"same elements", New(1, 2, 3), New(1, 2, 3), true},
		{"different length", New(1, 2, 3), New(1, 2), false},
		{"different element", New(1, 2, 3), New(1, 9, 3), false},
		{"shared history", buildRange(100), buildRange(99).Push(99), true},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tcase.Exp, Equal(tcase.A, tcase.B))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	var (
		a = New(1, 2, 3)
		b = New("1", "2", "3")
	)

	assert.True(t, EqualFunc(a, b, func(x int, s string) bool {
		return strconv.Itoa(x) == s
	}))
	assert.False(t, EqualFunc(a, New("1", "2", "4"), func(x int, s string) bool {
		return strconv.Itoa(x) == s
	}))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", New[int]().String())
	assert.Equal(t, "[1 2 3]", New(1, 2, 3).String())
}
