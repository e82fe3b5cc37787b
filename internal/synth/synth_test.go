package synth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
)

func build(t *testing.T, repr string, decls ...string) *schema.Schema {
	t.Helper()

	// "Name", "Name=expr", or "?Name" for the unknown variant
	var variants []schema.VariantDecl
	for _, d := range decls {
		var vd schema.VariantDecl
		if d[0] == '?' {
			vd = schema.VariantDecl{Name: d[1:], Unknown: true}
		} else if name, src, ok := strings.Cut(d, "="); ok {
			expr, err := schema.ParseExpr(src)
			require.NoError(t, err)
			vd = schema.VariantDecl{Name: name, Value: &expr}
		} else {
			vd = schema.VariantDecl{Name: d}
		}
		variants = append(variants, vd)
	}

	s, err := schema.Build(schema.Decl{Name: "Number", Repr: repr, Variants: variants})
	require.NoError(t, err)
	return s
}

func arms(op synth.Operation) []string {
	var out []string
	for _, arm := range op.Arms {
		s := arm.Variant + ":" + arm.Disc.String()
		if arm.Shadowed {
			s += "!"
		}
		out = append(out, s)
	}
	return out
}

func TestLiteral(t *testing.T) {
	s := build(t, "u8", "Zero", "One", "Ten=10", "Eleven", "?Unknown")
	c := synth.Synthesize(s, nil)

	assert.Empty(t, c.Consts)
	for _, op := range c.Operations() {
		assert.Equal(t, []string{"Zero:0", "One:1", "Ten:10", "Eleven:11"}, arms(op), op.Kind)
		assert.Equal(t, synth.FallbackWrap, op.Fallback, op.Kind)
		assert.Equal(t, "Unknown", op.Unknown, op.Kind)
	}
}

func TestFallbacksWithoutUnknown(t *testing.T) {
	s := build(t, "i16", "A", "B")
	c := synth.Synthesize(s, nil)

	assert.Equal(t, synth.FallbackPanic, c.ToInt.Fallback)
	assert.Equal(t, synth.FallbackError, c.TryToInt.Fallback)
	assert.Equal(t, synth.FallbackPanic, c.FromInt.Fallback)
	assert.Equal(t, synth.FallbackError, c.TryFromInt.Fallback)
	assert.Empty(t, c.FromInt.Unknown)
}

func TestHoisting(t *testing.T) {
	s := build(t, "u8", "Zero", "Twenty=10 + 10", "TwentyOne", "TwentyTwo", "Forty=Base*2", "FortyOne")
	c := synth.Synthesize(s, nil)

	require.Len(t, c.Consts, 5)

	assert.Equal(t, "numberDisc0", c.Consts[0].Name)
	assert.True(t, c.Consts[0].IsAnchor())
	assert.Equal(t, "10 + 10", c.Consts[0].Base.Src)

	assert.Equal(t, "numberDisc1", c.Consts[1].Name)
	assert.Equal(t, "numberDisc0", c.Consts[1].From)
	assert.Equal(t, uint64(1), c.Consts[1].Offset)

	assert.Equal(t, "numberDisc2", c.Consts[2].Name)
	assert.Equal(t, uint64(2), c.Consts[2].Offset)

	assert.Equal(t, "numberDisc3", c.Consts[3].Name)
	assert.Equal(t, "Base*2", c.Consts[3].Base.Src)

	assert.Equal(t, "numberDisc3", c.Consts[4].From)

	want := []string{
		"Zero:0",
		"Twenty:numberDisc0",
		"TwentyOne:numberDisc1",
		"TwentyTwo:numberDisc2",
		"Forty:numberDisc3",
		"FortyOne:numberDisc4",
	}
	for _, op := range c.Operations() {
		assert.Equal(t, want, arms(op), op.Kind)
	}
	assert.Equal(t, "numberDisc1", c.Discs["TwentyOne"].Const)
}

func TestHoistingNamespace(t *testing.T) {
	ns := make(codefmt.NS)
	ns.Reserve("numberDisc0")

	s := build(t, "u64", "A=7", "B")
	c := synth.Synthesize(s, ns)

	require.Len(t, c.Consts, 2)
	assert.Equal(t, "numberDisc0_2", c.Consts[0].Name)
	assert.Equal(t, "numberDisc1", c.Consts[1].Name)
	assert.Equal(t, "numberDisc0_2", c.Consts[1].From)
}

func TestShadowedDuplicates(t *testing.T) {
	s := build(t, "u8", "Ten=10", "Eleven", "Dix=10", "Onze")
	c := synth.Synthesize(s, nil)

	assert.Equal(t, []string{"Ten:10", "Eleven:11", "Dix:10!", "Onze:11!"}, arms(c.FromInt))

	var live []string
	for _, arm := range c.FromInt.Live() {
		live = append(live, arm.Variant)
	}
	assert.Equal(t, []string{"Ten", "Eleven"}, live)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "to_int", synth.ToInt.String())
	assert.Equal(t, "try_from_int", synth.TryFromInt.String())
	assert.True(t, synth.FromInt.Reverse())
	assert.False(t, synth.TryToInt.Reverse())
	assert.True(t, synth.TryToInt.Fallible())
}
