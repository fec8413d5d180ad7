package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seasonhq/scorecard/pkg/document"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a     document.Value
		b     document.Value
		equal bool
	}{
		{"nulls", document.Null(), document.Null(), true},
		{"equal numbers", document.Number(100000), document.Number(100000), true},
		{"different numbers", document.Number(1), document.Number(2), false},
		{"equal strings", document.String("x"), document.String("x"), true},
		{
			// No coercion; a numeric string and a number stay distinct.
			name:  "number vs numeric string",
			a:     document.Number(100000),
			b:     document.String("100000"),
			equal: false,
		},
		{"bool vs number", document.Bool(false), document.Number(0), false},
		{
			name:  "equal sequences",
			a:     document.Sequence(document.Number(1), document.String("a")),
			b:     document.Sequence(document.Number(1), document.String("a")),
			equal: true,
		},
		{
			name:  "sequences of different length",
			a:     document.Sequence(document.Number(1)),
			b:     document.Sequence(document.Number(1), document.Number(2)),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestMappingEqualIgnoresKeyOrder(t *testing.T) {
	a := document.NewMapping()
	a.Set("x", document.Number(1))
	a.Set("y", document.Number(2))

	b := document.NewMapping()
	b.Set("y", document.Number(2))
	b.Set("x", document.Number(1))

	assert.True(t, document.FromMapping(a).Equal(document.FromMapping(b)))

	c := document.NewMapping()
	c.Set("x", document.Number(1))
	c.Set("z", document.Number(2))
	assert.False(t, document.FromMapping(a).Equal(document.FromMapping(c)))

	d := document.NewMapping()
	d.Set("x", document.Number(1))
	d.Set("y", document.Number(3))
	assert.False(t, document.FromMapping(a).Equal(document.FromMapping(d)))
}

func TestValueCloneSharesNothing(t *testing.T) {
	inner := document.NewMapping()
	inner.Set("n", document.Number(1))
	root := document.NewMapping()
	root.Set("inner", document.FromMapping(inner))
	root.Set("seq", document.Sequence(document.FromMapping(inner.Clone())))

	clone := root.Clone()
	cloneInner, ok := clone.Get("inner")
	require.True(t, ok)
	cloneInner.Mapping().Set("n", document.Number(99))

	original, _ := root.Get("inner")
	got, _ := original.Mapping().Get("n")
	assert.Equal(t, float64(1), got.Number(), "mutating a clone must not touch the original")
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    document.Value
		want string
	}{
		{"integral number", document.Number(100000), "100000"},
		{"fractional number", document.Number(1.5), "1.5"},
		{"null", document.Null(), "null"},
		{"bool", document.Bool(true), "true"},
		{"sequence", document.Sequence(document.Number(1), document.String("a")), "[1, a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestFromInterfaceRoundTrip(t *testing.T) {
	v := document.FromInterface(map[string]any{
		"b": true,
		"n": 42,
		"s": "text",
		"l": []any{1.5, nil},
	})
	require.Equal(t, document.KindMapping, v.Kind())

	// Plain maps order deterministically by sorted key.
	assert.Equal(t, []string{"b", "l", "n", "s"}, v.Mapping().Keys())

	n, ok := v.Mapping().Get("n")
	require.True(t, ok)
	assert.Equal(t, float64(42), n.Number())

	l, _ := v.Mapping().Get("l")
	require.Equal(t, document.KindSequence, l.Kind())
	assert.True(t, l.Items()[1].IsNull())
}
