package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/enumconv/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Most rules are checked by [Parser.ParseEnum] while parsing options. The rest
// need to look at the whole package.
func (p *Parser) Validate(enums map[token.Pos]*Enum) error {
	found := make(map[token.Pos]struct{})
	for _, file := range p.EnumconvGoFiles() {
		for e := range p.FindEnums(file) {
			found[e.Call.Pos()] = struct{}{}
		}
	}

	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectives(file, found))
	}
	errs = errors.Join(errs, p.validateEnumUsages(enums))
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/enumconv"
// have "//go:build enumconv" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var enumconvImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsEnumconvImport(strings.Trim(imp.Path.Value, `"`)) {
			enumconvImport = imp
			break
		}
	}
	if enumconvImport == nil {
		return nil
	}

	if HasBuildTag(file) {
		return nil
	}

	return codefmt.Errorf(p, enumconvImport, `file must have "//go:build enumconv" constraint when importing enumconv`)
}

// validateDirectives checks directives outside package-level enum
// declarations.
//
// The directives are erased at code generation. Any directive left elsewhere
// would keep the enumconv import alive in the generated code.
func (p *Parser) validateDirectives(file *ast.File, found map[token.Pos]struct{}) error {
	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if _, ok := found[call.Pos()]; ok {
			// Options are checked by ParseEnum.
			return false
		}

		var err error
		if directive == "Enum" {
			err = codefmt.Errorf(p, call, "enumconv.Enum must be assigned to a package-level variable")
		} else {
			err = codefmt.Errorf(p, call, "cannot use enumconv.%s outside enumconv.Enum", directive)
		}
		errs = errors.Join(errs, err)
		return false
	})
	return errs
}

// validateEnumUsages checks illegal references to enum variables.
//
// An enum variable is replaced by a type at code generation. Other files see it
// as the generated type, but the files tagged "//go:build enumconv" see the
// directive and cannot use it at all.
func (p *Parser) validateEnumUsages(enums map[token.Pos]*Enum) error {
	var errs error
	for _, file := range p.EnumconvGoFiles() {
		astutil.Apply(file, func(c *astutil.Cursor) bool {
			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			obj := p.Pkg().TypesInfo.ObjectOf(id)
			if obj == nil {
				return false
			}

			e, ok := enums[obj.Pos()]
			if !ok {
				return false
			}

			if id.Pos() == obj.Pos() {
				// This is the declaration of the enum.
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use enum %q as value; replaced by a type at code generation", e.Decl.Name)
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}
