package partial

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

const snapshotVersion = 1

type envelope struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	State    json.RawMessage `json:"state"`
}

type wireState struct {
	Type     string      `json:"type,omitempty"`
	Func     wireValue   `json:"func"`
	Args     []wireValue `json:"args,omitempty"`
	Keywords []wirePair  `json:"keywords,omitempty"`
	Dict     []wirePair  `json:"dict,omitempty"`
}

type wirePair struct {
	Key   string    `json:"key"`
	Value wireValue `json:"value"`
}

type wireValue struct {
	Kind    string          `json:"kind"`
	Value   json.RawMessage `json:"value,omitempty"`
	List    []wireValue     `json:"list,omitempty"`
	Ref     string          `json:"ref,omitempty"`
	Partial *wireState      `json:"partial,omitempty"`
}

const (
	kindNil     = "nil"
	kindList    = "list"
	kindRef     = "ref"
	kindPartial = "partial"
)

// Marshal encodes the snapshot of p.
// Targets and callable arguments are written by their registered name;
// nested Partials are written inline. A Partial reachable from itself cannot be encoded.
func (r *Registry) Marshal(p *Partial) ([]byte, error) {
	enc := encoder{r: r, visiting: map[*Partial]bool{}}
	state, err := enc.encodePartial(p)
	if err != nil {
		r.logger.Debug("partial not serializable", zap.Stringer("partial", p), zap.Error(err))
		return nil, err
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}
	return json.Marshal(envelope{
		Version:  snapshotVersion,
		Checksum: checksum(raw),
		State:    raw,
	})
}

// Unmarshal rebuilds a Partial from data produced by Marshal.
func (r *Registry) Unmarshal(data []byte, opts ...Option) (*Partial, error) {
	p, err := r.unmarshal(data, opts)
	if err != nil {
		r.logger.Warn("snapshot rejected", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Registry) unmarshal(data []byte, opts []Option) (*Partial, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, env.Version)
	}
	if sum := checksum(env.State); sum != env.Checksum {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrCorruptSnapshot, sum, env.Checksum)
	}

	var state wireState
	if err := json.Unmarshal(env.State, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s, err := r.decodeState(&state)
	if err != nil {
		return nil, err
	}
	return Restore(s, opts...)
}

func checksum(raw []byte) string {
	return strconv.FormatUint(xxhash.Sum64(raw), 16)
}

// encoder tracks the Partials on the current encoding path.
type encoder struct {
	r        *Registry
	visiting map[*Partial]bool
}

func (e encoder) encodePartial(p *Partial) (*wireState, error) {
	if e.visiting[p] {
		return nil, fmt.Errorf("%w: cyclic partial %s", ErrUnsupportedValue, p.typeNameOrCanonical())
	}
	e.visiting[p] = true
	defer delete(e.visiting, p)
	return e.encodeState(p.Snapshot())
}

func (e encoder) encodeState(s Snapshot) (*wireState, error) {
	fn, err := e.encodeTarget(s.Func)
	if err != nil {
		return nil, err
	}
	state := &wireState{Type: s.TypeName, Func: fn}
	if state.Args, err = e.encodeList(s.Args); err != nil {
		return nil, err
	}
	if state.Keywords, err = e.encodePairs(s.Keywords); err != nil {
		return nil, err
	}
	if state.Dict, err = e.encodePairs(s.Dict); err != nil {
		return nil, err
	}
	return state, nil
}

// encodeCallable writes v by registered name, or inline when it is an unregistered Partial.
// ok is false when v is neither.
func (e encoder) encodeCallable(v any) (wireValue, bool, error) {
	if name, found := e.r.NameOf(v); found {
		return wireValue{Kind: kindRef, Ref: name}, true, nil
	}
	if p, isPartial := v.(*Partial); isPartial && p != nil {
		nested, err := e.encodePartial(p)
		if err != nil {
			return wireValue{}, true, err
		}
		return wireValue{Kind: kindPartial, Partial: nested}, true, nil
	}
	return wireValue{}, false, nil
}

func (e encoder) encodeTarget(target any) (wireValue, error) {
	w, ok, err := e.encodeCallable(target)
	if !ok {
		return wireValue{}, fmt.Errorf("%w: %s", ErrUnregisteredTarget, Repr(target))
	}
	return w, err
}

func (e encoder) encodeList(values []any) ([]wireValue, error) {
	if len(values) == 0 {
		return nil, nil
	}
	list := make([]wireValue, len(values))
	for i, v := range values {
		w, err := e.encodeValue(v)
		if err != nil {
			return nil, err
		}
		list[i] = w
	}
	return list, nil
}

func (e encoder) encodePairs(k *Kwargs) ([]wirePair, error) {
	if k.Len() == 0 {
		return nil, nil
	}
	pairs := make([]wirePair, 0, k.Len())
	for key, value := range k.All() {
		if !utf8.ValidString(key) {
			return nil, fmt.Errorf("%w: key %q is not valid UTF-8", ErrUnsupportedValue, key)
		}
		w, err := e.encodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		pairs = append(pairs, wirePair{Key: key, Value: w})
	}
	return pairs, nil
}

func (e encoder) encodeValue(v any) (wireValue, error) {
	if v == nil {
		return wireValue{Kind: kindNil}, nil
	}
	switch t := v.(type) {
	case string:
		// json replaces invalid UTF-8 with U+FFFD
		if !utf8.ValidString(t) {
			return wireValue{}, fmt.Errorf("%w: string %q is not valid UTF-8", ErrUnsupportedValue, t)
		}
		return scalarValue(t)
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return scalarValue(t)
	case []any:
		list, err := e.encodeList(t)
		if err != nil {
			return wireValue{}, err
		}
		return wireValue{Kind: kindList, List: list}, nil
	}
	if w, ok, err := e.encodeCallable(v); ok {
		return w, err
	}
	return wireValue{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func scalarValue(v any) (wireValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return wireValue{}, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}
	return wireValue{Kind: fmt.Sprintf("%T", v), Value: raw}, nil
}

func (r *Registry) decodeState(w *wireState) (Snapshot, error) {
	fn, err := r.decodeValue(w.Func)
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{TypeName: w.Type, Func: fn}
	if len(w.Args) > 0 {
		if s.Args, err = r.decodeList(w.Args); err != nil {
			return Snapshot{}, err
		}
	}
	if s.Keywords, err = r.decodePairs(w.Keywords); err != nil {
		return Snapshot{}, err
	}
	if s.Dict, err = r.decodePairs(w.Dict); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

func (r *Registry) decodeList(list []wireValue) ([]any, error) {
	values := make([]any, len(list))
	for i, w := range list {
		v, err := r.decodeValue(w)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (r *Registry) decodePairs(pairs []wirePair) (*Kwargs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	k := NewKwargs()
	for _, pair := range pairs {
		v, err := r.decodeValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair.Key, err)
		}
		k.Set(pair.Key, v)
	}
	return k, nil
}

func (r *Registry) decodeValue(w wireValue) (any, error) {
	if decode, ok := scalarDecoders[w.Kind]; ok {
		return decode(w.Value)
	}
	switch w.Kind {
	case kindNil:
		return nil, nil
	case kindList:
		return r.decodeList(w.List)
	case kindRef:
		target, ok := r.Lookup(w.Ref)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnregisteredTarget, w.Ref)
		}
		return target, nil
	case kindPartial:
		if w.Partial == nil {
			return nil, fmt.Errorf("%w: empty nested partial", ErrInvalidInput)
		}
		s, err := r.decodeState(w.Partial)
		if err != nil {
			return nil, err
		}
		return Restore(s, WithLogger(r.logger))
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedValue, w.Kind)
}

var scalarDecoders = map[string]func(json.RawMessage) (any, error){
	"bool":    decodeScalar[bool],
	"string":  decodeScalar[string],
	"int":     decodeScalar[int],
	"int8":    decodeScalar[int8],
	"int16":   decodeScalar[int16],
	"int32":   decodeScalar[int32],
	"int64":   decodeScalar[int64],
	"uint":    decodeScalar[uint],
	"uint8":   decodeScalar[uint8],
	"uint16":  decodeScalar[uint16],
	"uint32":  decodeScalar[uint32],
	"uint64":  decodeScalar[uint64],
	"float32": decodeScalar[float32],
	"float64": decodeScalar[float64],
}

func decodeScalar[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v, nil
}
