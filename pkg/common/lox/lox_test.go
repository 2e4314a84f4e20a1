package lox_test

import (
	"context"
	"errors"
	"github.com/piercep/thread-safe-collections/pkg/common/lox"
	"github.com/stretchr/testify/assert"
	"sync/atomic"
	"testing"
)

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) (int, error) { return v * 2, nil }
	for _, parallel := range []bool{false, true} {
		got, err := lox.Map(parallel, []int{1, 2, 3}, double)
		assert.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, got)
	}
}

func TestParallelMapLimitAndError(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	boom := errors.New("boom")
	_, err := lox.ParallelMap(context.Background(), 2, []int{1, 2, 3, 4, 5, 6}, func(_ context.Context, v int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		if v == 4 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
