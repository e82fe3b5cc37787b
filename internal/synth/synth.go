// Package synth derives the four conversion operations of an enum from its
// [schema.Schema]. Synthesis is a pure, single pass; the result is rendered
// by an emitter or realized by a runtime table.
package synth

import (
	"fmt"
	"go/constant"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
)

// Kind identifies one of the four conversion operations.
type Kind int

const (
	ToInt Kind = iota
	TryToInt
	FromInt
	TryFromInt
)

func (k Kind) String() string {
	switch k {
	case ToInt:
		return "to_int"
	case TryToInt:
		return "try_to_int"
	case FromInt:
		return "from_int"
	case TryFromInt:
		return "try_from_int"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Reverse reports whether the operation maps integers to variants.
func (k Kind) Reverse() bool { return k == FromInt || k == TryFromInt }

// Fallible reports whether the operation returns an error.
func (k Kind) Fallible() bool { return k == TryToInt || k == TryFromInt }

// Fallback is the default arm taken when no arm matches.
type Fallback int

const (
	// FallbackWrap maps to or from the unknown variant wrapping the raw
	// integer.
	FallbackWrap Fallback = iota + 1

	// FallbackPanic is a contract violation of a strict operation.
	FallbackPanic

	// FallbackError returns an unknown variant error.
	FallbackError
)

func (f Fallback) String() string {
	switch f {
	case FallbackWrap:
		return "wrap"
	case FallbackPanic:
		return "panic"
	case FallbackError:
		return "error"
	}
	return fmt.Sprintf("Fallback(%d)", int(f))
}

// Ref refers to a discriminant, either as a literal or as a hoisted [Const].
type Ref struct {
	Lit   constant.Value
	Const string
}

// IsConst reports whether the reference is to a hoisted constant.
func (r Ref) IsConst() bool { return r.Const != "" }

func (r Ref) String() string {
	if r.IsConst() {
		return r.Const
	}
	return r.Lit.ExactString()
}

// Const is a hoisted definition of a symbolic discriminant. An anchor has Base;
// its value is the base expression converted to Repr. A derived definition has
// From and Offset; its value is From + Offset with wraparound at the Repr
// width.
type Const struct {
	Name string
	Repr schema.Repr

	Base *schema.Expr

	From   string
	Offset uint64
}

// IsAnchor reports whether the constant is the base of a symbolic run.
func (c Const) IsAnchor() bool { return c.Base != nil }

// Arm is a pair of a variant and its discriminant. For the forward operations
// the variant is the match key; for the reverse operations the discriminant is.
type Arm struct {
	Variant string
	Disc    Ref

	// Shadowed marks an arm whose literal discriminant was claimed by an
	// earlier arm. It never matches because the first match wins.
	Shadowed bool
}

// Operation is one synthesized conversion.
type Operation struct {
	Kind     Kind
	Repr     schema.Repr
	Arms     []Arm
	Fallback Fallback

	// Unknown is the name of the unknown variant for [FallbackWrap].
	Unknown string
}

// Live returns the arms that are not shadowed.
func (op Operation) Live() []Arm {
	arms := make([]Arm, 0, len(op.Arms))
	for _, arm := range op.Arms {
		if !arm.Shadowed {
			arms = append(arms, arm)
		}
	}
	return arms
}

// Conversions is the result of [Synthesize].
type Conversions struct {
	Schema *schema.Schema

	// Consts are hoisted symbolic discriminants in declaration order. Every
	// symbolic discriminant is defined exactly once and referenced by name
	// from every operation.
	Consts []Const

	ToInt      Operation
	TryToInt   Operation
	FromInt    Operation
	TryFromInt Operation

	// Discs maps variant names to their discriminant references.
	Discs map[string]Ref
}

// Operations returns the four operations in the order of [Kind].
func (c *Conversions) Operations() []Operation {
	return []Operation{c.ToInt, c.TryToInt, c.FromInt, c.TryFromInt}
}

// Synthesize derives the conversions of the schema. Names of hoisted constants
// are claimed from ns; ns may be nil.
func Synthesize(s *schema.Schema, ns codefmt.NS) *Conversions {
	c := &Conversions{Schema: s, Discs: make(map[string]Ref)}

	anchors := make(map[*schema.Expr]string)
	hoist := func(disc schema.Discriminant) string {
		anchor, ok := anchors[disc.Base]
		if !ok {
			anchor = ns.Name(fmt.Sprintf("%sDisc%d", codefmt.Unexport(s.Name), len(c.Consts)))
			anchors[disc.Base] = anchor
			c.Consts = append(c.Consts, Const{Name: anchor, Repr: s.Repr, Base: disc.Base})
		}
		if disc.Offset == 0 {
			return anchor
		}

		name := ns.Name(fmt.Sprintf("%sDisc%d", codefmt.Unexport(s.Name), len(c.Consts)))
		c.Consts = append(c.Consts, Const{Name: name, Repr: s.Repr, From: anchor, Offset: disc.Offset})
		return name
	}

	claimed := linkedhashset.New()
	var arms []Arm
	for v := range s.Normals() {
		var ref Ref
		if v.Disc.IsSymbolic() {
			ref = Ref{Const: hoist(v.Disc)}
		} else {
			ref = Ref{Lit: v.Disc.Value}
		}
		c.Discs[v.Name] = ref

		arm := Arm{Variant: v.Name, Disc: ref}
		if !ref.IsConst() {
			key := ref.Lit.ExactString()
			if claimed.Contains(key) {
				arm.Shadowed = true
			} else {
				claimed.Add(key)
			}
		}
		arms = append(arms, arm)
	}

	for _, kind := range []Kind{ToInt, TryToInt, FromInt, TryFromInt} {
		op := Operation{
			Kind: kind,
			Repr: s.Repr,
			Arms: append([]Arm(nil), arms...),
		}
		switch {
		case s.Unknown != nil:
			op.Fallback = FallbackWrap
			op.Unknown = s.Unknown.Name
		case kind.Fallible():
			op.Fallback = FallbackError
		default:
			op.Fallback = FallbackPanic
		}

		switch kind {
		case ToInt:
			c.ToInt = op
		case TryToInt:
			c.TryToInt = op
		case FromInt:
			c.FromInt = op
		case TryFromInt:
			c.TryFromInt = op
		}
	}
	return c
}
