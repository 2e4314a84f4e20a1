package collections_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/piercep/thread-safe-collections/pkg/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

func TestTStackLIFO(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.New[string]()
	in := []string{"a", "b", "c", "d"}
	for _, v := range in {
		s.Push(v)
	}
	var out []string
	for range in {
		v, err := s.Pop()
		a.NoError(err)
		out = append(out, v)
	}
	a.Equal([]string{"d", "c", "b", "a"}, out)
	a.True(s.IsEmpty())
}

func TestTStackEmpty(t *testing.T) {
	t.Parallel()

	for name, s := range map[string]*collections.TStack[int]{
		"new":     collections.New[int](),
		"cleared": clearedStack(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Pop()
			assert.ErrorIs(t, err, collections.ErrEmptyCollection)
			_, err = s.Peek()
			assert.ErrorIs(t, err, collections.ErrEmptyCollection)

			_, ok := s.TryPop()
			assert.False(t, ok)
			_, ok = s.TryPeek()
			assert.False(t, ok)
		})
	}
}

func clearedStack() *collections.TStack[int] {
	s := collections.NewFromSlice([]int{1, 2, 3})
	s.Clear()
	return s
}

func TestTStackPeek(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.NewFromSlice([]int{1})
	s.Push(42)
	v, err := s.Peek()
	a.NoError(err)
	a.Equal(42, v)
	a.Equal(2, s.Count())

	v, ok := s.TryPeek()
	a.True(ok)
	a.Equal(42, v)
	a.Equal(2, s.Count())
}

func TestTStackFromSlice(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.NewFromSlice([]int{1, 2, 3})
	v, err := s.Pop()
	a.NoError(err)
	a.Equal(3, v)
	v, err = s.Pop()
	a.NoError(err)
	a.Equal(2, v)
	a.Equal(1, s.Count())
}

func TestTStackFromSeq(t *testing.T) {
	t.Parallel()

	s := collections.NewFromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, []int{3, 2, 1}, s.ToArray())
}

func TestTStackToArray(t *testing.T) {
	t.Parallel()

	s := collections.New[int]()
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	got := s.ToArray()
	want := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToArray() mismatch (-want +got):\n%s", diff)
	}

	got[0] = 100
	top, _ := s.Peek()
	assert.Equal(t, 9, top, "returned slice must not alias stack storage")
}

func TestTStackContains(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	type point struct{ X, Y int }
	s := collections.NewFromSlice([]point{{1, 2}, {3, 4}})
	a.True(s.Contains(point{3, 4}))
	a.False(s.Contains(point{4, 3}))
}

func TestTStackPushRange(t *testing.T) {
	t.Parallel()

	s := collections.NewFromSlice([]int{1})
	s.PushRange(2, 3, 4)
	assert.Equal(t, []int{4, 3, 2, 1}, s.ToArray())
}

func TestTStackPushUnique(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.New[string]()
	a.True(s.PushUnique("a"))
	a.False(s.PushUnique("a"))
	a.True(s.PushUnique("b"))
	a.Equal([]string{"b", "a"}, s.ToArray())
}

func TestTStackTrimExcess(t *testing.T) {
	t.Parallel()

	s := collections.New[int]()
	for i := 0; i < 64; i++ {
		s.Push(i)
	}
	for i := 0; i < 60; i++ {
		_, _ = s.Pop()
	}
	s.TrimExcess()
	assert.Equal(t, []int{3, 2, 1, 0}, s.ToArray())
}

func TestTStackCopyTo(t *testing.T) {
	t.Parallel()

	s := collections.NewFromSlice([]int{1, 2, 3})

	dst := make([]int, 5)
	require.NoError(t, s.CopyTo(dst, 1))
	assert.Equal(t, []int{0, 3, 2, 1, 0}, dst)

	assert.ErrorIs(t, s.CopyTo(make([]int, 2), 0), collections.ErrInvalidArgument)
	assert.ErrorIs(t, s.CopyTo(make([]int, 5), 3), collections.ErrInvalidArgument)
	assert.ErrorIs(t, s.CopyTo(make([]int, 5), -1), collections.ErrInvalidArgument)
	assert.ErrorIs(t, s.CopyTo(make([]int, 5), 6), collections.ErrInvalidArgument)
}

func TestTStackAll(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.NewFromSlice([]int{1, 2, 3})
	a.Equal([]int{3, 2, 1}, slices.Collect(s.All()))

	var firstTwo []int
	for v := range s.All() {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	a.Equal([]int{3, 2}, firstTwo)

	seq := s.All()
	s.Push(4)
	a.Equal([]int{4, 3, 2, 1}, slices.Collect(seq), "each iteration takes a fresh snapshot")
}

func TestTStackAllMutatingInLoop(t *testing.T) {
	t.Parallel()

	s := collections.NewFromSlice([]int{1, 2})
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
		s.Push(v * 10)
	}
	assert.Equal(t, []int{2, 1}, seen)
	assert.Equal(t, []int{10, 20, 2, 1}, s.ToArray())
}

func TestTStackSyncRoot(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	s := collections.New[int]()
	a.True(s.IsSynchronized())
	a.Same(s.SyncRoot(), s.SyncRoot())
	a.NotSame(s.SyncRoot(), collections.New[int]().SyncRoot())

	s.SyncRoot().Lock()
	defer s.SyncRoot().Unlock()
	s.Push(1)
	a.Equal(1, s.Count(), "internal locking is independent of the anchor")
}

func TestTStackString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TStack[3]{c b a}", collections.NewFromSlice([]string{"a", "b", "c"}).String())
	assert.Equal(t, "TStack[0]{}", collections.New[int]().String())
}
