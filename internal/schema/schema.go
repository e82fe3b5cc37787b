// Package schema resolves a declaration of an enum-like type into a validated
// [Schema]. It implements discriminant numbering and structural validation; it
// does not parse source code and does not format diagnostics.
package schema

import (
	"go/token"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Decl is the declaration of an enum as produced by a front-end.
type Decl struct {
	Name     string
	Repr     string
	Variants []VariantDecl
	Pos      token.Pos
}

// VariantDecl is a variant declaration. Value is the explicit discriminant
// expression, if any. Unknown marks the catch-all variant.
type VariantDecl struct {
	Name    string
	Value   *Expr
	Unknown bool
	Pos     token.Pos
}

// Variant is a resolved variant. A normal variant has a discriminant; the
// unknown variant has none and wraps the raw integer at runtime.
type Variant struct {
	Name    string
	Disc    Discriminant
	Unknown bool
	Pos     token.Pos
}

// Schema is a validated enum. It is built once by [Build] and must not be
// mutated afterward.
type Schema struct {
	Name string
	Repr Repr

	// Variants holds all variants in declaration order, including the
	// unknown variant.
	Variants []Variant

	// Unknown is the catch-all variant. It is nil if there is none.
	Unknown *Variant

	Pos token.Pos

	// index maps variant names to their indices in Variants.
	index *linkedhashmap.Map
}

// Normals iterates the normal variants in declaration order.
func (s *Schema) Normals() iter.Seq[Variant] {
	return func(yield func(Variant) bool) {
		for _, v := range s.Variants {
			if v.Unknown {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Lookup finds a variant by name.
func (s *Schema) Lookup(name string) (Variant, bool) {
	i, ok := s.index.Get(name)
	if !ok {
		return Variant{}, false
	}
	return s.Variants[i.(int)], true
}

// Build resolves and validates the declaration in a single pass. The first
// offending declaration determines the returned error, which is an [*Error].
func Build(decl Decl) (*Schema, error) {
	repr, err := ParseRepr(decl.Repr)
	if err != nil {
		e := err.(*Error)
		e.Enum = decl.Name
		e.Pos = decl.Pos
		return nil, e
	}

	b := builder{
		s:   &Schema{Name: decl.Name, Repr: repr, Pos: decl.Pos, index: linkedhashmap.New()},
		gen: NewGenerator(repr),
	}
	for _, vd := range decl.Variants {
		if err := b.add(vd); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

type builder struct {
	s   *Schema
	gen *Generator

	unknown int
	hasUnk  bool
}

func (b *builder) fail(kind error, vd VariantDecl) error {
	return &Error{
		Kind:    kind,
		Enum:    b.s.Name,
		Variant: vd.Name,
		Repr:    b.s.Repr.Token,
		Pos:     vd.Pos,
	}
}

func (b *builder) add(vd VariantDecl) error {
	if _, ok := b.s.index.Get(vd.Name); ok {
		return b.fail(ErrDuplicateVariant, vd)
	}

	v := Variant{Name: vd.Name, Unknown: vd.Unknown, Pos: vd.Pos}
	if vd.Unknown {
		if b.hasUnk {
			return b.fail(ErrMultipleCatchAll, vd)
		}
		if vd.Value != nil {
			return b.fail(ErrUnknownValue, vd)
		}
		b.hasUnk = true
		b.unknown = len(b.s.Variants)
	} else {
		var disc Discriminant
		var err error
		if vd.Value != nil {
			disc, err = b.gen.Reset(*vd.Value)
		} else {
			disc, err = b.gen.Next()
		}
		if err != nil {
			e := err.(*Error)
			e.Enum = b.s.Name
			e.Variant = vd.Name
			e.Pos = vd.Pos
			return e
		}
		v.Disc = disc
	}

	b.s.index.Put(vd.Name, len(b.s.Variants))
	b.s.Variants = append(b.s.Variants, v)
	return nil
}

func (b *builder) finish() *Schema {
	if b.hasUnk {
		b.s.Unknown = &b.s.Variants[b.unknown]
	}
	return b.s
}
