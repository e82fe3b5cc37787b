package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// BuildTag is the build tag of files containing enumconv directives.
const BuildTag = "enumconv"

func IsEnumconvImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/sublee/enumconv"
}

// Parser parses an AST of the underlying package to collect enum declarations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the enumconv directive function if the call
// expression is an enumconv directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsEnumconvImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is an enumconv directive with the
// given name. If name is empty, it checks if the call is any enumconv
// directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		return true
	}

	return calleeName == name
}

// EnumconvGoFiles returns the Go files that have a "//go:build enumconv"
// constraint.
func (p *Parser) EnumconvGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if HasBuildTag(file) {
			files = append(files, file)
		}
	}
	return files
}

// HasBuildTag checks if the file has a "//go:build enumconv" constraint, that
// is, the file is built only with the enumconv tag.
func HasBuildTag(file *ast.File) bool {
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}

			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}

			with := expr.Eval(func(string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != BuildTag })
			if with && !without {
				return true
			}
		}
	}
	return false
}
