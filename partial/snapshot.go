package partial

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Snapshot is the state a Partial can be rebuilt from.
type Snapshot struct {
	// TypeName is empty for a canonical Partial.
	TypeName string
	Func     any
	Args     []any
	Keywords *Kwargs
	// Dict holds the extra attributes, nil when there are none.
	Dict *Kwargs
}

func (p *Partial) Snapshot() Snapshot {
	return Snapshot{
		TypeName: p.typeName,
		Func:     p.target,
		Args:     p.Args(),
		Keywords: p.Keywords(),
		Dict:     p.Attrs(),
	}
}

// SetState replaces the target and the bound arguments with those of s
// and merges s.Dict into the extra attributes.
// On failure p is left untouched.
func (p *Partial) SetState(s Snapshot) error {
	call, err := validateSnapshot(s)
	if err != nil {
		return err
	}

	p.target = s.Func
	p.call = call
	p.args = slices.Clone(s.Args)
	p.keywords = s.Keywords.Clone()
	for key, value := range s.Dict.All() {
		if p.attrs == nil {
			p.attrs = NewKwargs()
		}
		p.attrs.Set(key, value)
	}
	p.logger.Debug("partial state restored", zap.Stringer("partial", p))
	return nil
}

func validateSnapshot(s Snapshot) (Callable, error) {
	var errs error
	call, err := AsCallable(s.Func)
	errs = multierr.Append(errs, err)
	for key := range s.Dict.All() {
		if isCoreAttr(key) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrReadOnlyAttribute, key))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid partial state: %w", errs)
	}
	return call, nil
}

// Restore builds a Partial equivalent to the one s was taken from.
func Restore(s Snapshot, opts ...Option) (*Partial, error) {
	if _, err := validateSnapshot(s); err != nil {
		return nil, err
	}
	opts = append([]Option{WithTypeName(s.TypeName)}, opts...)
	p, err := Bind(s.Func, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.SetState(s); err != nil {
		return nil, err
	}
	return p, nil
}
