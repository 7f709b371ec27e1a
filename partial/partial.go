package partial

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/seq"
	"go.uber.org/zap"
)

// Partial is a Callable with positional and keyword arguments bound ahead of time.
// The target and the bound arguments never change after construction,
// except through SetState.
type Partial struct {
	target   any
	call     Callable
	args     []any
	keywords *Kwargs
	attrs    *Kwargs

	typeName string
	logger   *zap.Logger
}

var _ Callable = (*Partial)(nil)

// New binds args to target. Kwarg values among args are bound as keyword arguments.
//
//	p, _ := partial.New(f, 1, 2, partial.KV("k", 3))
//	p.Invoke(4, partial.KV("k2", 5)) // f(1, 2, 4, k=3, k2=5)
func New(target any, args ...any) (*Partial, error) {
	positional, keywords := splitKwargs(args)
	return Bind(target, positional, keywords)
}

// Bind binds positional args and keywords to target.
// Empty keywords are stored as nil.
func Bind(target any, args []any, keywords *Kwargs, opts ...Option) (*Partial, error) {
	call, err := AsCallable(target)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	p := &Partial{
		target:   target,
		call:     call,
		args:     slices.Clone(args),
		keywords: keywords.Clone(),
		typeName: o.typeName,
		logger:   o.logger,
	}
	p.logger.Debug("partial bound", zap.Stringer("partial", p))
	return p, nil
}

// Func returns the target as it was given.
func (p *Partial) Func() any {
	return p.target
}

// Args returns a copy of the bound positional arguments.
func (p *Partial) Args() []any {
	return slices.Clone(p.args)
}

// Keywords returns a copy of the bound keyword arguments, nil when none are bound.
func (p *Partial) Keywords() *Kwargs {
	return p.keywords.Clone()
}

// Call invokes the target with the bound positional arguments followed by args,
// and with the bound keywords overridden by kwargs.
// The result and the error of the target are returned as they are.
func (p *Partial) Call(args []any, kwargs *Kwargs) (any, error) {
	effectiveArgs := seq.Collect(seq.Concat(seq.FromSlice(p.args), seq.FromSlice(args)))
	effectiveKwargs := MergeKwargs(p.keywords, kwargs)
	p.logger.Debug("partial invoked",
		zap.Stringer("partial", p),
		zap.Int("args", len(effectiveArgs)),
		zap.Int("keywords", effectiveKwargs.Len()),
	)
	return p.call.Call(effectiveArgs, effectiveKwargs)
}

// Invoke is Call with Kwarg values among args passed as keyword arguments.
func (p *Partial) Invoke(args ...any) (any, error) {
	positional, keywords := splitKwargs(args)
	return p.Call(positional, keywords)
}
