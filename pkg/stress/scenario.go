package stress

import (
	"context"
	"errors"
	"fmt"
	"github.com/piercep/thread-safe-collections/pkg/collections"
	"github.com/piercep/thread-safe-collections/pkg/common/lox"
	"github.com/samber/lo"
	"sync"
	"sync/atomic"
)

// ErrCheckFailed marks a scenario run which completed but broke an expected stack property
var ErrCheckFailed = errors.New("check failed")

// cancelCheckEvery limits how often long loops look at the context
const cancelCheckEvery = 256

type tickFunc func(n int)

// Scenario hits a fresh stack concurrently and verifies its state afterwards
type Scenario struct {
	Name        string
	Description string

	// planned returns the number of stack operations reported through tick
	planned func(o *Opts) int
	run     func(ctx context.Context, o *Opts, tick tickFunc) error
}

func (s Scenario) Planned(o *Opts) int {
	return s.planned(o)
}

func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "push",
			Description: "workers push concurrently, no update may be lost",
			planned:     func(o *Opts) int { return o.Workers * o.Operations },
			run:         runPush,
		},
		{
			Name:        "push-pop",
			Description: "workers push then pop the same amount, every pop succeeds and the stack ends empty",
			planned:     func(o *Opts) int { return 2 * o.Workers * o.Operations },
			run:         runPushPop,
		},
		{
			Name:        "snapshot",
			Description: "readers iterate while a writer pushes, every iteration sees a consistent point-in-time view",
			planned:     func(o *Opts) int { return o.Operations },
			run:         runSnapshot,
		},
		{
			Name:        "clear",
			Description: "a writer pushes batches and clears while readers copy, no partial state is observed",
			planned:     func(o *Opts) int { return 2 * clearRounds(o) },
			run:         runClear,
		},
		{
			Name:        "empty-pop",
			Description: "workers pop from an almost empty stack while a writer pushes, failed pops never keep the lock",
			planned:     func(o *Opts) int { return o.Operations },
			run:         runEmptyPop,
		},
		{
			Name:        "unique",
			Description: "workers push the same values uniquely, each value ends up once",
			planned:     func(o *Opts) int { return o.Workers * o.Operations },
			run:         runUnique,
		},
	}
}

func checkFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCheckFailed, fmt.Sprintf(format, args...))
}

func canceled(ctx context.Context, i int) error {
	if i%cancelCheckEvery == 0 {
		return ctx.Err()
	}
	return nil
}

func runPush(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("push")
	_, err := lox.ParallelMap(ctx, 0, lo.Range(o.Workers), func(ctx context.Context, worker int) (int, error) {
		for i := 0; i < o.Operations; i++ {
			if err := canceled(ctx, i); err != nil {
				return i, err
			}
			s.Push(worker*o.Operations + i)
			tick(1)
		}
		return o.Operations, nil
	})
	if err != nil {
		return err
	}
	expected := o.Workers * o.Operations
	if count := s.Count(); count != expected {
		return checkFailed("stack holds %d values but %d were pushed", count, expected)
	}
	if unique := len(lo.Uniq(s.ToArray())); unique != expected {
		return checkFailed("stack holds %d distinct values but %d were pushed", unique, expected)
	}
	return nil
}

func runPushPop(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("push-pop")
	popped, err := lox.ParallelMap(ctx, 0, lo.Range(o.Workers), func(ctx context.Context, worker int) (int, error) {
		for i := 0; i < o.Operations; i++ {
			if err := canceled(ctx, i); err != nil {
				return 0, err
			}
			s.Push(i)
			tick(1)
		}
		result := 0
		for i := 0; i < o.Operations; i++ {
			if err := canceled(ctx, i); err != nil {
				return result, err
			}
			if _, err := s.Pop(); err != nil {
				return result, checkFailed("worker %d cannot pop after pushing: %s", worker, err)
			}
			result++
			tick(1)
		}
		return result, nil
	})
	if err != nil {
		return err
	}
	if total, expected := lo.Sum(popped), o.Workers*o.Operations; total != expected {
		return checkFailed("popped %d values but %d were pushed", total, expected)
	}
	if !s.IsEmpty() {
		return checkFailed("stack is not empty after popping everything, %d values left", s.Count())
	}
	return nil
}

func runSnapshot(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("snapshot")
	var writing atomic.Bool
	writing.Store(true)

	var violation atomic.Pointer[error]
	var wg sync.WaitGroup
	for r := 0; r < o.Readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for writing.Load() && ctx.Err() == nil {
				if err := checkSnapshot(s); err != nil {
					violation.CompareAndSwap(nil, &err)
					return
				}
			}
		}()
	}

	var err error
	for i := 0; i < o.Operations; i++ {
		if err = canceled(ctx, i); err != nil {
			break
		}
		s.Push(i)
		tick(1)
	}
	writing.Store(false)
	wg.Wait()

	if err != nil {
		return err
	}
	if v := violation.Load(); v != nil {
		return *v
	}
	return checkSnapshot(s)
}

// checkSnapshot expects a single writer having pushed 0, 1, 2... so every view must count down to zero
func checkSnapshot(s *collections.TStack[int]) error {
	expected, seen := 0, 0
	for v := range s.All() {
		if seen == 0 {
			expected = v
		}
		if v != expected {
			return checkFailed("snapshot holds %d where %d was expected", v, expected)
		}
		expected--
		seen++
	}
	if seen > 0 && expected != -1 {
		return checkFailed("snapshot ended at %d instead of 0", expected+1)
	}
	return nil
}

func clearRounds(o *Opts) int {
	return max(1, o.Operations/o.Batch)
}

func runClear(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("clear")
	batch := lo.Range(o.Batch)

	var writing atomic.Bool
	writing.Store(true)
	partials, err := lox.ParallelMap(ctx, 0, lo.Range(o.Readers+1), func(ctx context.Context, reader int) (int, error) {
		if reader == 0 {
			defer writing.Store(false)
			for i := 0; i < clearRounds(o); i++ {
				if err := canceled(ctx, i); err != nil {
					return 0, err
				}
				s.PushRange(batch...)
				tick(1)
				s.Clear()
				tick(1)
			}
			return 0, nil
		}
		for writing.Load() && ctx.Err() == nil {
			if n := len(s.ToArray()); n != 0 && n != o.Batch {
				return n, nil
			}
			if n := s.Count(); n != 0 && n != o.Batch {
				return n, nil
			}
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	if partial, found := lo.Find(partials, func(n int) bool { return n != 0 }); found {
		return checkFailed("reader observed %d values while only 0 or %d are possible", partial, o.Batch)
	}
	return nil
}

func runEmptyPop(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("empty-pop")
	var writing atomic.Bool
	writing.Store(true)

	results, err := lox.ParallelMap(ctx, 0, lo.Range(o.Workers+1), func(ctx context.Context, worker int) (int, error) {
		if worker == 0 {
			defer writing.Store(false)
			for i := 0; i < o.Operations; i++ {
				if err := canceled(ctx, i); err != nil {
					return 0, err
				}
				s.Push(i)
				tick(1)
			}
			return 0, nil
		}
		popped := 0
		for writing.Load() && ctx.Err() == nil {
			_, err := s.Pop()
			if err == nil {
				popped++
			} else if !errors.Is(err, collections.ErrEmptyCollection) {
				return popped, checkFailed("unexpected pop error: %s", err)
			}
		}
		return popped, nil
	})
	if err != nil {
		return err
	}
	popped := lo.Sum(results)
	if count, expected := s.Count(), o.Operations-popped; count != expected {
		return checkFailed("stack holds %d values but %d pushed and %d popped", count, o.Operations, popped)
	}
	return nil
}

func runUnique(ctx context.Context, o *Opts, tick tickFunc) error {
	s := o.newStack("unique")
	pushed, err := lox.ParallelMap(ctx, 0, lo.Range(o.Workers), func(ctx context.Context, worker int) (int, error) {
		result := 0
		for i := 0; i < o.Operations; i++ {
			if err := canceled(ctx, i); err != nil {
				return result, err
			}
			if s.PushUnique(i) {
				result++
			}
			tick(1)
		}
		return result, nil
	})
	if err != nil {
		return err
	}
	if total := lo.Sum(pushed); total != o.Operations {
		return checkFailed("%d unique pushes succeeded but %d distinct values were offered", total, o.Operations)
	}
	if count := s.Count(); count != o.Operations {
		return checkFailed("stack holds %d values but %d distinct values were offered", count, o.Operations)
	}
	return nil
}
