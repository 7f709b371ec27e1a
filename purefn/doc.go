// Package purefn provides left-fold reduction over sequences of values.
//
// Reduce is not just a loop with an accumulator.
// Reduce is a tool that *forces the developer to ask*:
//
//	→ "Is there a value to start from?"
//	→ "What does folding nothing mean for this computation?"
//
// When a seed exists, use ReduceFrom: folding an empty sequence yields the seed unchanged.
// When it does not, Reduce seeds the accumulator with the first element and fails with
// ErrEmptySequence on an empty sequence instead of inventing a zero value.
//
// Features:
//   - Reduce, ReduceFrom: folds over iter.Seq.
//   - ReduceErr, ReduceFromErr: folds whose combining function can fail.
//   - ReduceSlice, ReduceSliceFrom: slice conveniences.
//
// The combining function is applied cumulatively, left to right:
//
//	Reduce(add, [1, 2, 3, 4, 5]) == ((((1+2)+3)+4)+5)
//
// Every element is enumerated exactly once, in order.
//
// See reduce_test.go and reduce_bench_test.go for usage and benchmarks.
package purefn
