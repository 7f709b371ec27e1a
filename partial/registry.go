package partial

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/google/uuid"
	"github.com/on-the-ground/functools_go/shared/helper"
	"go.uber.org/zap"
)

// Registry names callables so that a Partial can be serialized and rebuilt.
//
// Go functions are keyed by their func value, not by their code: every closure and
// every method value is a distinct func value, so NameOf only finds the exact value
// that was registered. Evaluating a method value again (a.Add) yields a new, unnamed one.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]any
	byFunc  map[unsafe.Pointer]string
	byValue map[any]string

	logger *zap.Logger
}

// funcIdentity returns the data word of an interface holding a func, which is the
// pointer to the func value itself. reflect.Value.Pointer only gives the code pointer,
// shared by all closures of one literal and all method values of one method.
func funcIdentity(fn any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1]
}

type RegistryOption func(*Registry)

// WithRegistryLogger traces registrations and rejected snapshots.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty Registry logging to a no-op logger by default.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName:  map[string]any{},
		byFunc:  map[unsafe.Pointer]string{},
		byValue: map[any]string{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register names target. Names are unique; target must be callable.
func (r *Registry) Register(name string, target any) error {
	if name == "" {
		return helper.InvalidInputf("empty registry name")
	}
	if _, err := AsCallable(target); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.byName[name] = target

	v := reflect.ValueOf(target)
	switch {
	case v.Kind() == reflect.Func:
		if _, ok := r.byFunc[funcIdentity(target)]; !ok {
			r.byFunc[funcIdentity(target)] = name
		}
	case v.Type().Comparable():
		if _, ok := r.byValue[target]; !ok {
			r.byValue[target] = name
		}
	}
	r.logger.Debug("callable registered", zap.String("name", name), zap.String("target", Repr(target)))
	return nil
}

// RegisterAnonymous registers target under a generated name and returns it.
func (r *Registry) RegisterAnonymous(target any) (string, error) {
	name := "anonymous-" + uuid.New().String()
	if err := r.Register(name, target); err != nil {
		return "", err
	}
	return name, nil
}

// Lookup returns the callable registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target, ok := r.byName[name]
	return target, ok
}

// NameOf returns the first name target was registered under.
func (r *Registry) NameOf(target any) (string, bool) {
	if isNil(target) {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Func {
		name, ok := r.byFunc[funcIdentity(target)]
		return name, ok
	}
	if !v.Type().Comparable() {
		return "", false
	}
	name, ok := r.byValue[target]
	return name, ok
}
