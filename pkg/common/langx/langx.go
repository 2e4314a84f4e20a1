package langx

import (
	"errors"
	"fmt"
	"github.com/samber/lo"
	"slices"
)

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrInvalidArgument = errors.New("invalid argument")
)

// trimThreshold is the fill ratio below which TrimExcess reallocates
const trimThreshold = 0.9

// Stack is a slice-backed LIFO collection. It is not safe for concurrent use.
type Stack[T any] struct {
	values []T
}

func NewStackWithValue[T any](initialValue T) Stack[T] {
	return Stack[T]{values: []T{initialValue}}
}

// NewStackWithValues copies values so that the last one becomes the top
func NewStackWithValues[T any](values []T) Stack[T] {
	return Stack[T]{values: slices.Clone(values)}
}

func EmptyStack[T any]() Stack[T] {
	return Stack[T]{values: []T{}}
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.values)
}

func (s *Stack[T]) Cap() int {
	return cap(s.values)
}

func (s *Stack[T]) Push(value T) {
	s.values = append(s.values, value)
}

func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("cannot pop value from stack: %w", ErrEmptyCollection)
	}
	last := len(s.values) - 1
	top := s.values[last]
	var zero T
	s.values[last] = zero // drop reference
	s.values = s.values[:last]
	return top, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("cannot peek value from stack: %w", ErrEmptyCollection)
	}
	return s.values[len(s.values)-1], nil
}

func (s *Stack[T]) ContainsFunc(predicate func(value T) bool) bool {
	return lo.ContainsBy(s.values, predicate)
}

func (s *Stack[T]) Clear() {
	clear(s.values)
	s.values = s.values[:0]
}

// ToSlice returns a fresh slice ordered from top to bottom
func (s *Stack[T]) ToSlice() []T {
	result := make([]T, len(s.values))
	for i, v := range s.values {
		result[len(s.values)-1-i] = v
	}
	return result
}

func (s *Stack[T]) Clone() Stack[T] {
	return Stack[T]{values: slices.Clone(s.values)}
}

func (s *Stack[T]) TrimExcess() {
	if float64(len(s.values)) >= float64(cap(s.values))*trimThreshold {
		return
	}
	trimmed := make([]T, len(s.values))
	copy(trimmed, s.values)
	s.values = trimmed
}

// CopyTo writes the top-to-bottom contents into destination starting at offset
func (s *Stack[T]) CopyTo(destination []T, offset int) error {
	if offset < 0 || offset > len(destination) {
		return fmt.Errorf("cannot copy stack to destination at offset %d out of range [0, %d]: %w", offset, len(destination), ErrInvalidArgument)
	}
	if len(destination)-offset < len(s.values) {
		return fmt.Errorf("cannot copy %d stack values to destination of length %d at offset %d: %w", len(s.values), len(destination), offset, ErrInvalidArgument)
	}
	for i, v := range s.values {
		destination[offset+len(s.values)-1-i] = v
	}
	return nil
}
