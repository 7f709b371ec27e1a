package partial

import "fmt"

// Names of the attributes every Partial carries.
const (
	AttrFunc     = "func"
	AttrArgs     = "args"
	AttrKeywords = "keywords"
	AttrDict     = "__dict__"
)

func isCoreAttr(name string) bool {
	switch name {
	case AttrFunc, AttrArgs, AttrKeywords, AttrDict:
		return true
	}
	return false
}

// Attr looks up name among the core attributes first, then the extra attributes.
func (p *Partial) Attr(name string) (any, bool) {
	switch name {
	case AttrFunc:
		return p.Func(), true
	case AttrArgs:
		return p.Args(), true
	case AttrKeywords:
		return p.Keywords(), true
	case AttrDict:
		return p.Attrs(), true
	}
	return p.attrs.Get(name)
}

func (p *Partial) SetAttr(name string, value any) error {
	if isCoreAttr(name) {
		return fmt.Errorf("%w: %q", ErrReadOnlyAttribute, name)
	}
	if p.attrs == nil {
		p.attrs = NewKwargs()
	}
	p.attrs.Set(name, value)
	return nil
}

// DelAttr removes an extra attribute.
// The attribute store itself can never be removed.
func (p *Partial) DelAttr(name string) error {
	switch {
	case name == AttrDict:
		return ErrProtectedAttribute
	case isCoreAttr(name):
		return fmt.Errorf("%w: %q", ErrReadOnlyAttribute, name)
	case !p.attrs.Delete(name):
		return fmt.Errorf("%w: %q", ErrNoAttribute, name)
	}
	return nil
}

// Attrs returns a copy of the extra attributes, nil when there are none.
func (p *Partial) Attrs() *Kwargs {
	return p.attrs.Clone()
}
