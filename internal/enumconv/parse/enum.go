package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
)

// Enum is an enum declared by [enumconv.Enum].
type Enum struct {
	// Decl is the declaration to build a schema from.
	Decl schema.Decl

	// Prefix is the prefix of variant names.
	Prefix string

	// Doc is the doc comment of the variable holding the directive.
	Doc *ast.CommentGroup

	// Ident is the variable holding the directive. It is replaced by the
	// generated type.
	Ident *ast.Ident
	Call  *ast.CallExpr
}

// Pos returns the position of the enum name. Enum implements [codefmt.Poser].
func (e *Enum) Pos() token.Pos { return e.Ident.Pos() }

// ParseEnums finds and parses all enumconv.Enum declarations in the files
// tagged "//go:build enumconv". The enums are keyed by the position of their
// names.
func (p *Parser) ParseEnums() (map[token.Pos]*Enum, error) {
	var errs error
	enums := make(map[token.Pos]*Enum)

	for _, file := range p.EnumconvGoFiles() {
		for found := range p.FindEnums(file) {
			if found.Ident.Name == "_" {
				err := codefmt.Errorf(p, found.Ident, "cannot declare enum as blank identifier")
				errs = errors.Join(errs, err)
				continue
			}

			e, err := p.ParseEnum(found.Call, found.Ident)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			e.Doc = found.Doc
			enums[e.Pos()] = e
		}
	}

	return enums, errs
}

// FindEnums iterates package-level [enumconv.Enum] calls without parsing them.
// Only Ident, Doc and Call of the yielded enums are set. It does not find
// inline calls.
func (p *Parser) FindEnums(file *ast.File) iter.Seq[*Enum] {
	return func(yield func(*Enum) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				doc := val.Doc
				if doc == nil && len(gen.Specs) == 1 {
					// var Number = enumconv.Enum(...)
					doc = gen.Doc
				}

				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Enum") {
						continue
					}

					if !yield(&Enum{Ident: id, Doc: doc, Call: call}) {
						return
					}
				}
			}
		}
	}
}

// ParseEnum parses an [enumconv.Enum] call expression assigned to id.
func (p *Parser) ParseEnum(call *ast.CallExpr, id *ast.Ident) (*Enum, error) {
	e := &Enum{
		Decl:   schema.Decl{Name: id.Name, Pos: id.Pos()},
		Prefix: id.Name,
		Ident:  id,
		Call:   call,
	}

	if call.Ellipsis.IsValid() {
		return nil, codefmt.Errorf(p, call, "cannot expand options of enumconv.Enum; declare them inline")
	}

	var errs error
	hasRepr := false
	hasPrefix := false
	for _, arg := range call.Args {
		opt, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			err := codefmt.Errorf(p, arg, "cannot use %c as enum option; need inline enumconv directive", arg)
			errs = errors.Join(errs, err)
			continue
		}

		directive, ok := p.GetDirective(opt)
		if !ok {
			err := codefmt.Errorf(p, arg, "cannot use %c as enum option; need inline enumconv directive", arg)
			errs = errors.Join(errs, err)
			continue
		}

		switch directive {
		case "Repr":
			if hasRepr {
				err := codefmt.Errorf(p, opt, "duplicate enumconv.Repr")
				errs = errors.Join(errs, err)
				continue
			}
			hasRepr = true

			expr, err := needArgs1(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			repr, err := parseString(p, expr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			e.Decl.Repr = repr

		case "Variant", "Unknown":
			expr, err := needArgs1(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			name, err := parseName(p, expr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			e.Decl.Variants = append(e.Decl.Variants, schema.VariantDecl{
				Name:    name,
				Unknown: directive == "Unknown",
				Pos:     opt.Pos(),
			})

		case "Value":
			nameExpr, valueExpr, err := needArgs2(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			name, err := parseName(p, nameExpr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if inner, ok := ast.Unparen(valueExpr).(*ast.CallExpr); ok && p.IsDirective(inner, "") {
				err := codefmt.Errorf(p, valueExpr, "cannot use enumconv directive as discriminant")
				errs = errors.Join(errs, err)
				continue
			}
			value := schema.Expr{Src: codefmt.FormatExpr(p, valueExpr), Node: valueExpr}
			e.Decl.Variants = append(e.Decl.Variants, schema.VariantDecl{
				Name:  name,
				Value: &value,
				Pos:   opt.Pos(),
			})

		case "ConstPrefix":
			if hasPrefix {
				err := codefmt.Errorf(p, opt, "duplicate enumconv.ConstPrefix")
				errs = errors.Join(errs, err)
				continue
			}
			hasPrefix = true

			expr, err := needArgs1(p, opt)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			prefix, err := parseString(p, expr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if prefix != "" && !codefmt.IsIdent(prefix) {
				err := codefmt.Errorf(p, expr, "%q is not valid identifier prefix", prefix)
				errs = errors.Join(errs, err)
				continue
			}
			e.Prefix = prefix

		default:
			err := codefmt.Errorf(p, opt, "cannot use enumconv.%s as enum option", directive)
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return e, nil
}
