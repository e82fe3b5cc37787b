package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger  interface{ Pkg() *packages.Package }
	Poser  interface{ Pos() token.Pos }
	Ender  interface{ End() token.Pos }
	Exprer interface{ Expr() ast.Expr }
)

// wrapPrintfArgs replaces the arguments that [codeArg] can format. Strings and
// numbers are kept as is.
func (f Formatter) wrapPrintfArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case token.Pos, token.Position, ast.Expr, types.Object, Poser, Exprer:
			wrapped[i] = codeArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

type codeArg struct {
	x   any
	fmt Formatter
}

func (a codeArg) expr() ast.Expr {
	switch x := a.x.(type) {
	case ast.Expr:
		return x
	case Exprer:
		return x.Expr()
	}
	return nil
}

func (a codeArg) position() (token.Position, bool) {
	var pos token.Pos
	switch x := a.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		pos = x
	case types.Object:
		pos = x.Pos()
	case Poser:
		pos = x.Pos()
	default:
		return token.Position{}, false
	}
	if a.fmt.Fset == nil {
		return token.Position{}, true
	}
	return a.fmt.Fset.Position(pos), true
}

// Format implements fmt.Formatter.
//
//	%c: ast.Expr in Go syntax
//	%b: position as file:line:column
//
// Other verbs format the argument as fmt does.
func (a codeArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'c':
		expr := a.expr()
		if expr == nil {
			fmt.Fprintf(s, "[%%c cannot format %T]", a.x)
			return
		}
		_, _ = io.WriteString(s, a.fmt.Expr(expr))

	case 'b':
		pos, ok := a.position()
		if !ok {
			fmt.Fprintf(s, "[%%b cannot format %T]", a.x)
			return
		}
		_, _ = io.WriteString(s, FormatPosition(pos))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapPrintfArgs(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapPrintfArgs(args)...)
}
