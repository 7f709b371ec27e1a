package helper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidInput is the single input-error kind shared by every package of this module.
// Validation failures wrap it, so errors.Is(err, ErrInvalidInput) holds for all of them.
var ErrInvalidInput = errors.New("invalid input")

var ErrUnexpectedType = errors.New("unexpected type")

// InvalidInputf builds an error wrapping ErrInvalidInput.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// TypedValueOf asserts a dynamically typed result to T.
// The error of the producing call is returned as is.
// A nil result is accepted for T whose zero value is nil (pointers, interfaces, maps, ...).
func TypedValueOf[T any](res any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res == nil {
		if isNillable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: got nil, want %v", ErrUnexpectedType, reflect.TypeFor[T]())
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %v", ErrUnexpectedType, res, reflect.TypeFor[T]())
	}
	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
func MustTypedValue[T any](res any, err error) T {
	val, err := TypedValueOf[T](res, err)
	if err != nil {
		panic(err)
	}
	return val
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
