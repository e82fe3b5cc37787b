// Package table realizes synthesized conversions as a lookup table at run
// time. It is the dynamic counterpart of the emitted Go code: both are built
// from the same [synth.Conversions] and must agree on every conversion.
package table

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"

	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
	"github.com/sublee/enumconv/pkg/enumconverrors"
)

// Integer is the set of Go types a [Table] can store discriminants in.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Env holds named integer constants that symbolic discriminant bases may
// refer to.
type Env map[string]int64

// Define adds a named constant.
func (e Env) Define(name string, v int64) { e[name] = v }

func (e Env) pkg() *types.Package {
	pkg := types.NewPackage("enumconv/env", "env")
	for name, v := range e {
		pkg.Scope().Insert(types.NewConst(token.NoPos, pkg, name, types.Typ[types.UntypedInt], constant.MakeInt64(v)))
	}
	return pkg
}

// Value is a variant of a [Table]. The zero Value is not a variant of any
// table.
type Value[T Integer] struct {
	name    string
	raw     T
	unknown bool
}

// Name returns the variant name. For the unknown variant it is the name of
// the catch-all.
func (v Value[T]) Name() string { return v.name }

// IsUnknown reports whether v is the unknown variant.
func (v Value[T]) IsUnknown() bool { return v.unknown }

// Raw returns the wrapped integer of the unknown variant.
func (v Value[T]) Raw() T { return v.raw }

func (v Value[T]) String() string {
	switch {
	case v.unknown:
		return fmt.Sprintf("%s(%v)", v.name, v.raw)
	case v.name == "":
		return "<invalid>"
	}
	return v.name
}

// Entry is a normal variant and its realized discriminant.
type Entry[T Integer] struct {
	Name string
	Disc T
}

// Table converts between the variants of an enum and integers of type T.
type Table[T Integer] struct {
	enum    string
	entries []Entry[T]
	discs   map[string]T
	names   map[T]string
	unknown string
}

// New realizes the conversions into a table. T must have the width and the
// signedness of the representation. Symbolic bases are evaluated once against
// env, which may be nil.
func New[T Integer](c *synth.Conversions, env Env) (*Table[T], error) {
	s := c.Schema
	if err := checkType[T](s.Repr); err != nil {
		return nil, err
	}

	pkg := env.pkg()
	consts := make(map[string]T, len(c.Consts))
	for _, k := range c.Consts {
		if !k.IsAnchor() {
			// T arithmetic wraps at the width of the representation.
			consts[k.Name] = consts[k.From] + T(k.Offset)
			continue
		}

		tv, err := types.Eval(token.NewFileSet(), pkg, token.NoPos, k.Base.Src)
		if err != nil {
			return nil, fmt.Errorf("cannot evaluate discriminant %s of %s: %w", k.Base.Src, s.Name, err)
		}
		if tv.Value == nil || tv.Value.Kind() != constant.Int {
			return nil, fmt.Errorf("discriminant %s of %s is not an integer constant", k.Base.Src, s.Name)
		}
		v, err := convert[T](tv.Value, s.Repr)
		if err != nil {
			return nil, err
		}
		consts[k.Name] = v
	}

	t := &Table[T]{
		enum:    s.Name,
		discs:   make(map[string]T),
		names:   make(map[T]string),
		unknown: c.FromInt.Unknown,
	}
	for _, arm := range c.FromInt.Arms {
		var disc T
		if arm.Disc.IsConst() {
			disc = consts[arm.Disc.Const]
		} else {
			v, err := convert[T](arm.Disc.Lit, s.Repr)
			if err != nil {
				return nil, err
			}
			disc = v
		}

		t.entries = append(t.entries, Entry[T]{Name: arm.Variant, Disc: disc})
		t.discs[arm.Variant] = disc
		// The first declared variant wins the reverse lookup.
		if _, ok := t.names[disc]; !ok {
			t.names[disc] = arm.Variant
		}
	}
	return t, nil
}

func checkType[T Integer](repr schema.Repr) error {
	goType, ok := repr.GoType()
	if !ok {
		return fmt.Errorf("representation %s has no Go integer type", repr)
	}

	typ := reflect.TypeFor[T]()
	signed := typ.Kind() >= reflect.Int && typ.Kind() <= reflect.Int64
	if typ.Bits() != repr.Bits || signed != repr.Signed {
		return fmt.Errorf("%s cannot store discriminants of %s; use %s", typ, repr, goType)
	}
	return nil
}

func convert[T Integer](v constant.Value, repr schema.Repr) (T, error) {
	if !repr.Fits(v) {
		return 0, fmt.Errorf("discriminant %s overflows %s: %w", v.ExactString(), repr, schema.ErrDiscriminantOverflow)
	}
	if repr.Signed {
		i, _ := constant.Int64Val(v)
		return T(i), nil
	}
	u, _ := constant.Uint64Val(v)
	return T(u), nil
}

// Enum returns the name of the enum.
func (t *Table[T]) Enum() string { return t.enum }

// Entries returns the normal variants in declaration order.
func (t *Table[T]) Entries() []Entry[T] { return t.entries }

// Variant returns the normal variant of the name.
func (t *Table[T]) Variant(name string) (Value[T], bool) {
	if _, ok := t.discs[name]; !ok {
		return Value[T]{}, false
	}
	return Value[T]{name: name}, true
}

// Unknown returns the unknown variant wrapping raw. It returns false if the
// enum has no unknown variant.
func (t *Table[T]) Unknown(raw T) (Value[T], bool) {
	if t.unknown == "" {
		return Value[T]{}, false
	}
	return Value[T]{name: t.unknown, raw: raw, unknown: true}, true
}

func (t *Table[T]) toInt(v Value[T]) (T, bool) {
	if v.unknown {
		return v.raw, v.name == t.unknown
	}
	disc, ok := t.discs[v.name]
	return disc, ok
}

// ToInt returns the discriminant of v, or the wrapped integer of the unknown
// variant. It panics if v is not a variant of the table.
func (t *Table[T]) ToInt(v Value[T]) T {
	disc, ok := t.toInt(v)
	if !ok {
		panic(fmt.Sprintf("enumconv: unknown variant of %s: %s", t.enum, v))
	}
	return disc
}

// TryToInt is like [Table.ToInt] but returns an
// [enumconverrors.UnknownVariantError] instead of panicking.
func (t *Table[T]) TryToInt(v Value[T]) (T, error) {
	disc, ok := t.toInt(v)
	if !ok {
		return 0, &enumconverrors.UnknownVariantError{Enum: t.enum, Value: v}
	}
	return disc, nil
}

func (t *Table[T]) fromInt(raw T) (Value[T], bool) {
	if name, ok := t.names[raw]; ok {
		return Value[T]{name: name}, true
	}
	return t.Unknown(raw)
}

// FromInt returns the variant of the discriminant raw. An unmatched integer is
// wrapped by the unknown variant. It panics if there is no unknown variant.
func (t *Table[T]) FromInt(raw T) Value[T] {
	v, ok := t.fromInt(raw)
	if !ok {
		panic(fmt.Sprintf("enumconv: unknown discriminant of %s: %v", t.enum, raw))
	}
	return v
}

// TryFromInt is like [Table.FromInt] but returns an
// [enumconverrors.UnknownVariantError] instead of panicking.
func (t *Table[T]) TryFromInt(raw T) (Value[T], error) {
	v, ok := t.fromInt(raw)
	if !ok {
		return Value[T]{}, &enumconverrors.UnknownVariantError{Enum: t.enum, Value: raw}
	}
	return v, nil
}
