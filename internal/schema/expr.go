package schema

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"strings"
)

// Expr is an explicit discriminant expression as written in the source. It is
// opaque for this package except for plain integer literals.
type Expr struct {
	// Src is the source text of the expression.
	Src string

	// Node is the syntax of the expression. It may be nil if the expression
	// was not parsed.
	Node ast.Expr
}

// ParseExpr parses a discriminant expression from its source text.
func ParseExpr(src string) (Expr, error) {
	node, err := parser.ParseExpr(src)
	if err != nil {
		return Expr{}, fmt.Errorf("invalid discriminant expression %q: %w", src, err)
	}
	return Expr{Src: strings.TrimSpace(src), Node: node}, nil
}

// Lit creates an integer literal expression.
func Lit(v int64) Expr {
	src := fmt.Sprint(v)
	lit := &ast.BasicLit{Kind: token.INT, Value: src}
	if v < 0 {
		return Expr{Src: src, Node: &ast.UnaryExpr{Op: token.SUB, X: &ast.BasicLit{Kind: token.INT, Value: src[1:]}}}
	}
	return Expr{Src: src, Node: lit}
}

// IntLit returns the value of the expression if it is an integer literal,
// optionally negated or parenthesized. Any other expression, including
// constant arithmetic like 10 + 10, is symbolic.
func (e Expr) IntLit() (constant.Value, bool) {
	node := e.Node
	if node == nil {
		parsed, err := parser.ParseExpr(e.Src)
		if err != nil {
			return nil, false
		}
		node = parsed
	}
	return intLit(node)
}

func intLit(node ast.Expr) (constant.Value, bool) {
	switch node := ast.Unparen(node).(type) {
	case *ast.BasicLit:
		if node.Kind != token.INT {
			return nil, false
		}
		v := constant.MakeFromLiteral(node.Value, token.INT, 0)
		if v.Kind() != constant.Int {
			return nil, false
		}
		return v, true

	case *ast.UnaryExpr:
		if node.Op != token.SUB && node.Op != token.ADD {
			return nil, false
		}
		v, ok := intLit(node.X)
		if !ok {
			return nil, false
		}
		return constant.UnaryOp(node.Op, v, 0), true
	}
	return nil, false
}

func (e Expr) String() string { return e.Src }

// Discriminant is the resolved integer of a normal variant. It is either a
// literal or a deferred addition of a symbolic base and an offset.
type Discriminant struct {
	// Base is the symbolic base. It is nil for a literal discriminant.
	Base *Expr

	// Value is the literal value. It is set only if Base is nil.
	Value constant.Value

	// Offset is the increment from Base. An offset of 0 is Base itself.
	Offset uint64
}

// IsSymbolic reports whether the discriminant has a symbolic base.
func (d Discriminant) IsSymbolic() bool { return d.Base != nil }

func (d Discriminant) String() string {
	if d.Base == nil {
		if d.Value == nil {
			return "<nil>"
		}
		return d.Value.ExactString()
	}
	if d.Offset == 0 {
		return "(" + d.Base.Src + ")"
	}
	return fmt.Sprintf("(%s) + %d", d.Base.Src, d.Offset)
}
