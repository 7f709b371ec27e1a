package partial_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/functools_go/partial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type invocation struct {
	Args   []any
	Kwargs []partial.Kwarg
}

func record(args []any, kwargs *partial.Kwargs) (any, error) {
	return invocation{Args: args, Kwargs: kwargs.Pairs()}, nil
}

// invoked unpacks the result of a call to record: invoked(t)(p.Invoke(...)).
func invoked(t *testing.T) func(any, error) invocation {
	return func(res any, err error) invocation {
		t.Helper()
		require.NoError(t, err)
		inv, ok := res.(invocation)
		require.True(t, ok, "unexpected result %#v", res)
		return inv
	}
}

func TestPartial_MergesArguments(t *testing.T) {
	p, err := partial.New(record, 1, 2, partial.KV("k", 3))
	require.NoError(t, err)

	inv := invoked(t)(p.Invoke(4, partial.KV("k2", 5)))
	assert.Equal(t, []any{1, 2, 4}, inv.Args)
	assert.Equal(t, []partial.Kwarg{partial.KV("k", 3), partial.KV("k2", 5)}, inv.Kwargs)
}

func TestPartial_KeywordOverride(t *testing.T) {
	p, err := partial.New(record, partial.KV("k", 1))
	require.NoError(t, err)

	inv := invoked(t)(p.Invoke(partial.KV("k", 2)))
	assert.Empty(t, inv.Args)
	assert.Equal(t, []partial.Kwarg{partial.KV("k", 2)}, inv.Kwargs)

	// bound value is untouched by the override
	v, ok := p.Keywords().Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPartial_OverrideKeepsBoundPosition(t *testing.T) {
	p, err := partial.New(record, partial.KV("a", 1), partial.KV("b", 2))
	require.NoError(t, err)

	inv := invoked(t)(p.Call(nil, partial.NewKwargs(partial.KV("c", 3), partial.KV("a", 10))))
	assert.Equal(t, []partial.Kwarg{partial.KV("a", 10), partial.KV("b", 2), partial.KV("c", 3)}, inv.Kwargs)
}

func TestPartial_NoBoundArguments(t *testing.T) {
	p, err := partial.New(record)
	require.NoError(t, err)
	assert.Empty(t, p.Args())
	assert.Nil(t, p.Keywords())

	inv := invoked(t)(p.Invoke("x"))
	assert.Equal(t, []any{"x"}, inv.Args)
	assert.Empty(t, inv.Kwargs)
}

func TestPartial_EmptyKeywordsNormalizeToNil(t *testing.T) {
	p, err := partial.Bind(record, nil, partial.NewKwargs())
	require.NoError(t, err)
	assert.Nil(t, p.Keywords())
}

func TestPartial_MissingTarget(t *testing.T) {
	_, err := partial.New(nil, 1)
	assert.ErrorIs(t, err, partial.ErrMissingTarget)
	assert.ErrorIs(t, err, partial.ErrInvalidInput)

	var nilFunc func(int) int
	_, err = partial.New(nilFunc)
	assert.ErrorIs(t, err, partial.ErrMissingTarget)

	var nilPartial *partial.Partial
	_, err = partial.New(nilPartial)
	assert.ErrorIs(t, err, partial.ErrMissingTarget)
}

func TestPartial_NotCallable(t *testing.T) {
	_, err := partial.New(42)
	assert.ErrorIs(t, err, partial.ErrNotCallable)
	assert.ErrorIs(t, err, partial.ErrInvalidInput)
}

func TestPartial_PropagatesTargetError(t *testing.T) {
	boom := errors.New("boom")
	p, err := partial.New(func(args []any, _ *partial.Kwargs) (any, error) {
		return nil, boom
	}, 1)
	require.NoError(t, err)

	_, err = p.Invoke()
	assert.Same(t, boom, err)
}

func TestPartial_ReflectedTarget(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	p, err := partial.New(sub, 10)
	require.NoError(t, err)

	res, err := p.Invoke(3)
	require.NoError(t, err)
	assert.Equal(t, 7, res)

	_, err = p.Invoke(partial.KV("b", 3))
	assert.ErrorIs(t, err, partial.ErrUnexpectedKeyword)
}

func TestPartial_Nested(t *testing.T) {
	inner, err := partial.New(record, 1, partial.KV("a", 1))
	require.NoError(t, err)
	outer, err := partial.New(inner, 2, partial.KV("b", 2))
	require.NoError(t, err)

	inv := invoked(t)(outer.Invoke(3, partial.KV("a", 9)))
	assert.Equal(t, []any{1, 2, 3}, inv.Args)
	assert.Equal(t, []partial.Kwarg{partial.KV("a", 9), partial.KV("b", 2)}, inv.Kwargs)
}

func TestPartial_ViewsAreCopies(t *testing.T) {
	p, err := partial.New(record, 1, partial.KV("k", 1))
	require.NoError(t, err)

	args := p.Args()
	args[0] = 100
	kw := p.Keywords()
	kw.Set("k", 100)

	inv := invoked(t)(p.Invoke())
	assert.Equal(t, []any{1}, inv.Args)
	assert.Equal(t, []partial.Kwarg{partial.KV("k", 1)}, inv.Kwargs)
}

func TestPartial_BindCopiesInput(t *testing.T) {
	args := []any{1, 2}
	kw := partial.NewKwargs(partial.KV("k", 1))
	p, err := partial.Bind(record, args, kw)
	require.NoError(t, err)

	args[0] = "changed"
	kw.Set("k", "changed")

	inv := invoked(t)(p.Invoke())
	assert.Equal(t, []any{1, 2}, inv.Args)
	assert.Equal(t, []partial.Kwarg{partial.KV("k", 1)}, inv.Kwargs)
}

func TestCallAs(t *testing.T) {
	p, err := partial.New(func(a, b string) string { return a + b }, "foo")
	require.NoError(t, err)

	s, err := partial.CallAs[string](p, "bar")
	require.NoError(t, err)
	assert.Equal(t, "foobar", s)

	_, err = partial.CallAs[int](p, "bar")
	assert.Error(t, err)
}

func TestPartial_LogsInvocation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p, err := partial.Bind(record, []any{1}, nil, partial.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = p.Invoke(2, partial.KV("k", 3))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("partial bound").Len())
	entries := logs.FilterMessage("partial invoked").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["args"])
	assert.Equal(t, int64(1), fields["keywords"])
	assert.Equal(t, p.String(), fields["partial"])
}

func ExamplePartial_Invoke() {
	join := func(sep string, parts ...string) string {
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += sep
			}
			out += p
		}
		return out
	}
	dashed, _ := partial.New(join, "-")
	res, _ := dashed.Invoke("a", "b", "c")
	fmt.Println(res)
	// Output: a-b-c
}
