package langx_test

import (
	"github.com/piercep/thread-safe-collections/pkg/common/langx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := langx.EmptyStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	a.Equal(3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		a.NoError(err)
		a.Equal(want, got)
	}
	a.True(s.IsEmpty())
}

func TestStackEmpty(t *testing.T) {
	t.Parallel()

	s := langx.EmptyStack[string]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, langx.ErrEmptyCollection)
	_, err = s.Peek()
	assert.ErrorIs(t, err, langx.ErrEmptyCollection)
}

func TestStackWithValuesCopies(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	values := []int{1, 2, 3}
	s := langx.NewStackWithValues(values)
	values[2] = 100

	top, err := s.Peek()
	a.NoError(err)
	a.Equal(3, top)
	a.Equal([]int{3, 2, 1}, s.ToSlice())

	single := langx.NewStackWithValue("x")
	a.Equal([]string{"x"}, single.ToSlice())
}

func TestStackClone(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := langx.NewStackWithValues([]int{1, 2})
	c := s.Clone()
	s.Push(3)
	a.Equal([]int{2, 1}, c.ToSlice())
	a.Equal([]int{3, 2, 1}, s.ToSlice())
}

func TestStackTrimExcess(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := langx.EmptyStack[int]()
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	for i := 0; i < 90; i++ {
		_, _ = s.Pop()
	}
	a.Greater(s.Cap(), 10)
	s.TrimExcess()
	a.Equal(10, s.Cap())
	a.Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, s.ToSlice())
}

func TestStackContainsAndClear(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := langx.NewStackWithValues([]string{"a", "b"})
	a.True(s.ContainsFunc(func(v string) bool { return v == "a" }))
	a.False(s.ContainsFunc(func(v string) bool { return v == "c" }))
	s.Clear()
	a.True(s.IsEmpty())
	a.False(s.ContainsFunc(func(v string) bool { return v == "a" }))
}

func TestStackCopyTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dstLen  int
		offset  int
		want    []int
		wantErr bool
	}{
		{"exact", 3, 0, []int{3, 2, 1}, false},
		{"offset", 5, 2, []int{0, 0, 3, 2, 1}, false},
		{"too small", 2, 0, nil, true},
		{"no room after offset", 4, 2, nil, true},
		{"negative offset", 3, -1, nil, true},
		{"offset past end", 3, 4, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := langx.NewStackWithValues([]int{1, 2, 3})
			dst := make([]int, tt.dstLen)
			err := s.CopyTo(dst, tt.offset)
			if tt.wantErr {
				require.ErrorIs(t, err, langx.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst)
		})
	}
}
