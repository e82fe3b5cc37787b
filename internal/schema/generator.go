package schema

import (
	"fmt"
	"go/constant"
	"go/token"
)

// Generator assigns discriminants to normal variants in declaration order. It
// implements C-like numbering: a variant without an explicit value follows the
// previous one, and an explicit value re-anchors the sequence.
//
// A Generator is scoped to a single schema build.
type Generator struct {
	repr Repr

	// base is the symbolic zero-point of the current run. If nil, v is the
	// next literal discriminant.
	base *Expr

	// v is the next literal if base is nil, otherwise the next offset from
	// base.
	v constant.Value
}

// NewGenerator creates a [Generator] which starts at literal 0.
func NewGenerator(repr Repr) *Generator {
	return &Generator{repr: repr, v: constant.MakeInt64(0)}
}

// Next returns the discriminant of a variant without an explicit value.
func (g *Generator) Next() (Discriminant, error) {
	v := g.v
	g.v = constant.BinaryOp(g.v, token.ADD, constant.MakeInt64(1))

	if g.base != nil {
		off, _ := constant.Uint64Val(v)
		return Discriminant{Base: g.base, Offset: off}, nil
	}

	if !g.repr.Fits(v) {
		return Discriminant{}, &Error{
			Kind: ErrDiscriminantOverflow,
			Repr: g.repr.Token,
			msg:  fmt.Sprintf("discriminant %s overflows %s", v.ExactString(), g.repr.Token),
		}
	}
	return Discriminant{Value: v}, nil
}

// Reset returns the discriminant of a variant with the explicit value expr and
// re-anchors the sequence at it.
//
// If the representation is computable and expr is an integer literal that fits
// it, the literal is folded: following variants continue as plain literals.
// Otherwise expr becomes the symbolic base and following variants are base + 1,
// base + 2, and so on. The addition is deferred and wraps at the
// representation width when realized.
func (g *Generator) Reset(expr Expr) (Discriminant, error) {
	if g.repr.Computable {
		if lit, ok := expr.IntLit(); ok && g.repr.Fits(lit) {
			g.base = nil
			g.v = constant.BinaryOp(lit, token.ADD, constant.MakeInt64(1))
			return Discriminant{Value: lit}, nil
		}
	}

	base := expr
	g.base = &base
	g.v = constant.MakeInt64(1)
	return Discriminant{Base: g.base, Offset: 0}, nil
}
