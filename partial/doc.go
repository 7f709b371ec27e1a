// Package partial provides partial application for Go functions.
//
// A Partial wraps a target with some positional and keyword arguments bound ahead of time.
// Invoking it appends the new positional arguments to the bound ones and lays the new
// keyword arguments over the bound ones:
//
//	p, _ := partial.New(f, 1, 2, partial.KV("k", 3))
//	p.Invoke(4, partial.KV("k2", 5)) // f(1, 2, 4, k=3, k2=5)
//	p.Invoke(partial.KV("k", 9))     // f(1, 2, k=9)
//
// Targets are Callable values, Func-shaped functions, or any other Go function;
// the latter are called through reflection and only accept positional arguments.
//
// A Partial is fixed after construction. Its state can be captured with Snapshot and
// rebuilt with Restore, or serialized through a Registry that names the targets.
package partial
