package partial

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// CanonicalName is the display name of a Partial that is not a named variant.
const CanonicalName = "partial.Partial"

// Reprer is implemented by values with a dedicated debugging representation.
type Reprer interface {
	Repr() string
}

// Repr renders v for display inside a Partial representation.
func Repr(v any) string {
	if isNil(v) {
		return "nil"
	}
	switch t := v.(type) {
	case Reprer:
		return t.Repr()
	case string:
		return strconv.Quote(t)
	case fmt.Stringer:
		return t.String()
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Repr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		return funcName(rv)
	}
	return fmt.Sprintf("%#v", v)
}

func funcName(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		return f.Name()
	}
	return fn.Type().String()
}

// String renders p as name(target, args..., key=value...).
func (p *Partial) String() string {
	name := p.typeNameOrCanonical()
	parts := make([]string, 0, 1+len(p.args)+p.keywords.Len())
	parts = append(parts, Repr(p.target))
	for _, arg := range p.args {
		parts = append(parts, Repr(arg))
	}
	for key, value := range p.keywords.All() {
		parts = append(parts, key+"="+Repr(value))
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func (p *Partial) typeNameOrCanonical() string {
	if p.typeName != "" {
		return p.typeName
	}
	return CanonicalName
}
