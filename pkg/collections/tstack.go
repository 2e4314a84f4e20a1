// Package collections provides generic collections which are safe for concurrent use
package collections

import (
	"fmt"
	"github.com/piercep/thread-safe-collections/pkg/common/langx"
	"github.com/piercep/thread-safe-collections/pkg/common/syncx"
	"iter"
	"strings"
	"sync"
)

var (
	ErrEmptyCollection = langx.ErrEmptyCollection
	ErrInvalidArgument = langx.ErrInvalidArgument
)

// TStack is a last-in, first-out collection safe for concurrent use by multiple goroutines.
//
// Reading operations share the lock, mutating ones hold it exclusively.
// None of them may be called from inside another operation's callback, the lock is not reentrant.
type TStack[T comparable] struct {
	stack    langx.Stack[T]
	lock     syncx.RWLocker
	syncRoot *sync.Mutex
}

func New[T comparable]() *TStack[T] {
	return newTStack(langx.EmptyStack[T]())
}

// NewFromSlice copies values in order, so the last of them ends up on top
func NewFromSlice[T comparable](values []T) *TStack[T] {
	return newTStack(langx.NewStackWithValues(values))
}

func NewFromSeq[T comparable](seq iter.Seq[T]) *TStack[T] {
	stack := langx.EmptyStack[T]()
	for v := range seq {
		stack.Push(v)
	}
	return newTStack(stack)
}

// NewWithLock allows to plug in a lock, e.g. one built by syncx.NewRWLockWithWaitWarn
func NewWithLock[T comparable](lock syncx.RWLocker, values []T) *TStack[T] {
	result := NewFromSlice(values)
	result.lock = lock
	return result
}

func newTStack[T comparable](stack langx.Stack[T]) *TStack[T] {
	return &TStack[T]{
		stack:    stack,
		lock:     syncx.NewRWLock("tstack"),
		syncRoot: new(sync.Mutex),
	}
}

func (s *TStack[T]) Push(item T) {
	_ = syncx.WithWriteLock(s.lock, func() error {
		s.stack.Push(item)
		return nil
	})
}

// PushRange pushes all items at once, the last one ends up on top
func (s *TStack[T]) PushRange(items ...T) {
	_ = syncx.WithWriteLock(s.lock, func() error {
		for _, item := range items {
			s.stack.Push(item)
		}
		return nil
	})
}

// PushUnique pushes item only when it is not in the stack yet and reports whether it did
func (s *TStack[T]) PushUnique(item T) bool {
	pushed, _ := syncx.WithUpgradeableReadLockValue(s.lock, func(u syncx.Upgrader) (bool, error) {
		if s.contains(item) {
			return false, nil
		}
		err := u.WithWriteLock(func() error {
			s.stack.Push(item)
			return nil
		})
		return err == nil, err
	})
	return pushed
}

func (s *TStack[T]) Pop() (T, error) {
	return syncx.WithWriteLockValue(s.lock, s.stack.Pop)
}

func (s *TStack[T]) TryPop() (T, bool) {
	v, err := s.Pop()
	return v, err == nil
}

func (s *TStack[T]) Peek() (T, error) {
	return syncx.WithReadLockValue(s.lock, s.stack.Peek)
}

func (s *TStack[T]) TryPeek() (T, bool) {
	v, err := s.Peek()
	return v, err == nil
}

func (s *TStack[T]) Contains(item T) bool {
	result, _ := syncx.WithReadLockValue(s.lock, func() (bool, error) {
		return s.contains(item), nil
	})
	return result
}

func (s *TStack[T]) contains(item T) bool {
	return s.stack.ContainsFunc(func(v T) bool { return v == item })
}

func (s *TStack[T]) Count() int {
	result, _ := syncx.WithReadLockValue(s.lock, func() (int, error) {
		return s.stack.Len(), nil
	})
	return result
}

func (s *TStack[T]) IsEmpty() bool {
	return s.Count() == 0
}

func (s *TStack[T]) Clear() {
	_ = syncx.WithWriteLock(s.lock, func() error {
		s.stack.Clear()
		return nil
	})
}

// ToArray returns a new slice holding the values from top to bottom
func (s *TStack[T]) ToArray() []T {
	result, _ := syncx.WithReadLockValue(s.lock, func() ([]T, error) {
		return s.stack.ToSlice(), nil
	})
	return result
}

// TrimExcess releases spare capacity when less than 90% of it is used
func (s *TStack[T]) TrimExcess() {
	_ = syncx.WithWriteLock(s.lock, func() error {
		s.stack.TrimExcess()
		return nil
	})
}

// CopyTo copies the values from top to bottom into destination starting at offset.
// It fails with ErrInvalidArgument when they do not fit.
func (s *TStack[T]) CopyTo(destination []T, offset int) error {
	return syncx.WithReadLock(s.lock, func() error {
		return s.stack.CopyTo(destination, offset)
	})
}

// All returns the values from top to bottom.
//
// Each iteration works on a private copy taken when it starts, the lock is held only while copying.
// Changes made afterwards, including by the loop body itself, are not visible to that iteration.
func (s *TStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		snapshot := s.snapshot()
		for !snapshot.IsEmpty() {
			v, _ := snapshot.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

func (s *TStack[T]) snapshot() langx.Stack[T] {
	result, _ := syncx.WithReadLockValue(s.lock, func() (langx.Stack[T], error) {
		return s.stack.Clone(), nil
	})
	return result
}

// IsSynchronized is always true as every operation locks internally.
// It says nothing about SyncRoot which is not used by the stack itself.
func (s *TStack[T]) IsSynchronized() bool {
	return true
}

// SyncRoot returns a mutex dedicated to callers needing their own synchronization around the stack
func (s *TStack[T]) SyncRoot() *sync.Mutex {
	return s.syncRoot
}

func (s *TStack[T]) String() string {
	values := s.ToArray()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("TStack[%d]{%s}", len(values), strings.Join(parts, " "))
}
