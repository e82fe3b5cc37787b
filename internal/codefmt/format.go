package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Formatter formats expressions and positions of a package.
type Formatter struct {
	Fset *token.FileSet
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.Fset}
}

func newByPkger(pkger Pkger) Formatter {
	if pkger == nil {
		return New(nil)
	}
	return New(pkger.Pkg())
}

// Expr returns the Go source code of expr.
//
//	f.Expr([ast.Expr for Base+10]) => "Base + 10"
func (f Formatter) Expr(expr ast.Expr) string {
	fset := f.Fset
	if fset == nil {
		fset = token.NewFileSet()
	}
	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // go/printer supports every ast.Expr
	}
	return b.String()
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

// FormatPosition formats pos as "file:line:column" with the file relative to
// the working directory.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
