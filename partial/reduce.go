package partial

import (
	"iter"

	"github.com/on-the-ground/functools_go/purefn"
	"github.com/on-the-ground/functools_go/shared/helper"
)

// Reduce folds items with any callable of two arguments, left to right.
// At most one initial value may be given; without it the first item seeds the fold
// and empty items fail with purefn.ErrEmptySequence.
func Reduce(fn any, items iter.Seq[any], initial ...any) (any, error) {
	if len(initial) > 1 {
		return nil, helper.InvalidInputf("reduce expected at most one initial value, got %d", len(initial))
	}
	call, err := AsCallable(fn)
	if err != nil {
		return nil, err
	}

	combine := func(acc, item any) (any, error) {
		return call.Call([]any{acc, item}, nil)
	}
	if len(initial) == 1 {
		return purefn.ReduceFromErr(combine, items, initial[0])
	}
	return purefn.ReduceErr(combine, items)
}
