package purefn

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/on-the-ground/functools_go/shared/helper"
)

var ErrInvalidInput = helper.ErrInvalidInput

var ErrEmptySequence = fmt.Errorf("%w: reduce of empty sequence with no initial value", ErrInvalidInput)

// Reduce folds s left to right, seeding the accumulator with its first element.
// An empty s fails with ErrEmptySequence.
func Reduce[T any](fn func(T, T) T, s iter.Seq[T]) (T, error) {
	return ReduceErr(func(acc, item T) (T, error) {
		return fn(acc, item), nil
	}, s)
}

// ReduceFrom folds s left to right starting from initial; an empty s yields initial.
func ReduceFrom[T, A any](fn func(A, T) A, s iter.Seq[T], initial A) A {
	result := initial
	for item := range s {
		result = fn(result, item)
	}
	return result
}

// ReduceErr seeds the accumulator with the first element of s.
// The first error returned by fn stops the enumeration and is returned unchanged.
func ReduceErr[T any](fn func(T, T) (T, error), s iter.Seq[T]) (result T, err error) {
	seeded := false
	for item := range s {
		if !seeded {
			result, seeded = item, true
			continue
		}
		if result, err = fn(result, item); err != nil {
			var zero T
			return zero, err
		}
	}
	if !seeded {
		return result, ErrEmptySequence
	}
	return result, nil
}

// ReduceFromErr is ReduceFrom with an fn that can fail; the first error is returned unchanged.
func ReduceFromErr[T, A any](fn func(A, T) (A, error), s iter.Seq[T], initial A) (A, error) {
	result := initial
	for item := range s {
		var err error
		if result, err = fn(result, item); err != nil {
			var zero A
			return zero, err
		}
	}
	return result, nil
}

// ReduceSlice is Reduce over a slice.
func ReduceSlice[T any](fn func(T, T) T, items []T) (T, error) {
	return Reduce(fn, seq.FromSlice(items))
}

// ReduceSliceFrom is ReduceFrom over a slice.
func ReduceSliceFrom[T, A any](fn func(A, T) A, items []T, initial A) A {
	return ReduceFrom(fn, seq.FromSlice(items), initial)
}
