package partial

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/functools_go/shared/helper"
)

// Callable is anything invocable with positional and keyword arguments.
type Callable interface {
	Call(args []any, kwargs *Kwargs) (any, error)
}

// Func adapts a plain function to Callable.
type Func func(args []any, kwargs *Kwargs) (any, error)

func (f Func) Call(args []any, kwargs *Kwargs) (any, error) {
	return f(args, kwargs)
}

// AsCallable resolves target into a Callable.
//
// Callable values and Func-shaped functions are used as they are.
// Any other Go function is invoked through reflection with positional arguments only.
func AsCallable(target any) (Callable, error) {
	if isNil(target) {
		return nil, ErrMissingTarget
	}
	switch t := target.(type) {
	case Callable:
		return t, nil
	case func([]any, *Kwargs) (any, error):
		return Func(t), nil
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %T", ErrNotCallable, target)
	}
	return reflectFunc{fn: v}, nil
}

// CallAs invokes c and asserts its result to T.
// Kwarg values among args are passed as keyword arguments.
func CallAs[T any](c Callable, args ...any) (T, error) {
	positional, keywords := splitKwargs(args)
	return helper.TypedValueOf[T](c.Call(positional, keywords))
}

func isNil(target any) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

var errorType = reflect.TypeFor[error]()

type reflectFunc struct {
	fn reflect.Value
}

func (r reflectFunc) Call(args []any, kwargs *Kwargs) (any, error) {
	if kwargs.Len() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedKeyword, kwargs.Keys())
	}

	in, err := r.inputs(args)
	if err != nil {
		return nil, err
	}
	return r.outputs(r.fn.Call(in))
}

func (r reflectFunc) inputs(args []any) ([]reflect.Value, error) {
	ft := r.fn.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: takes at least %d arguments (%d given)", ErrArgument, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: takes %d arguments (%d given)", ErrArgument, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(fixed).Elem()
		}
		v, err := argValue(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrArgument, i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argValue(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a valid %v", pt)
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%T is not assignable to %v", arg, pt)
	}
	return v, nil
}

func (r reflectFunc) outputs(out []reflect.Value) (any, error) {
	ft := r.fn.Type()
	var err error
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, err
}
