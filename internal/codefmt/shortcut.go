package codefmt

import (
	"go/ast"
	"go/token"
)

// FormatExpr is a shorthand for [Formatter.Expr].
func FormatExpr(pkger Pkger, expr ast.Expr) string {
	return newByPkger(pkger).Expr(expr)
}

func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// Wrap is a shorthand for [Formatter.Wrap].
func Wrap(pkger Pkger, poser Poser, err error) error {
	return newByPkger(pkger).Wrap(poser, err)
}

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func Pos(pos token.Pos) Poser  { return poser{pos} }
