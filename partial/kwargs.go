package partial

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kwarg is a single keyword argument.
// Passed among positional values to New or Invoke, it is bound by name instead of position.
type Kwarg struct {
	Key   string
	Value any
}

// KV builds a Kwarg.
func KV(key string, value any) Kwarg {
	return Kwarg{Key: key, Value: value}
}

// Kwargs is an insertion-ordered keyword argument mapping.
// A nil *Kwargs is a valid, empty mapping for every read operation.
type Kwargs struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewKwargs builds a mapping from pairs; a repeated key keeps its first position and its last value.
func NewKwargs(pairs ...Kwarg) *Kwargs {
	k := &Kwargs{m: orderedmap.New[string, any]()}
	for _, p := range pairs {
		k.m.Set(p.Key, p.Value)
	}
	return k
}

// Len returns the number of keys.
func (k *Kwargs) Len() int {
	if k == nil {
		return 0
	}
	return k.m.Len()
}

// Get returns the value bound to key.
func (k *Kwargs) Get(key string) (any, bool) {
	if k == nil {
		return nil, false
	}
	return k.m.Get(key)
}

// Set binds key to value, keeping the position of an existing key.
// k must not be nil.
func (k *Kwargs) Set(key string, value any) {
	k.m.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (k *Kwargs) Delete(key string) bool {
	if k == nil {
		return false
	}
	_, ok := k.m.Delete(key)
	return ok
}

// All yields the pairs in insertion order.
func (k *Kwargs) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if k == nil {
			return
		}
		for pair := k.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (k *Kwargs) Keys() []string {
	keys := make([]string, 0, k.Len())
	for key := range k.All() {
		keys = append(keys, key)
	}
	return keys
}

// Pairs returns the pairs in insertion order.
func (k *Kwargs) Pairs() []Kwarg {
	pairs := make([]Kwarg, 0, k.Len())
	for key, value := range k.All() {
		pairs = append(pairs, KV(key, value))
	}
	return pairs
}

// Clone returns an independent copy, or nil when k holds nothing.
func (k *Kwargs) Clone() *Kwargs {
	if k.Len() == 0 {
		return nil
	}
	return NewKwargs(k.Pairs()...)
}

// MergeKwargs lays override over base.
// Keys of base come first in their order and keep their position when overridden;
// keys only present in override follow in their order.
// An empty result is nil.
func MergeKwargs(base, override *Kwargs) *Kwargs {
	if base.Len() == 0 {
		return override.Clone()
	}
	merged := base.Clone()
	for key, value := range override.All() {
		merged.Set(key, value)
	}
	return merged
}

// splitKwargs separates Kwarg values from positional ones, keeping the order of both.
func splitKwargs(values []any) ([]any, *Kwargs) {
	var (
		positional []any
		keywords   *Kwargs
	)
	for _, v := range values {
		kw, ok := v.(Kwarg)
		if !ok {
			positional = append(positional, v)
			continue
		}
		if keywords == nil {
			keywords = NewKwargs()
		}
		keywords.Set(kw.Key, kw.Value)
	}
	return positional, keywords
}
