// Package enumdef parses textual enum definitions:
//
//	#[repr(u8)]
//	enum Number {
//	    Zero,
//	    Ten = 10,
//	    Twenty = 10 + 10,
//	    TwentyOne,
//	    #[unknown]
//	    Other(u8),
//	}
//
// An unknown variant is marked by #[unknown] or #[enumconv(unknown)]. Other
// attributes are ignored. Explicit discriminants are Go constant expressions.
package enumdef

import (
	"errors"
	"go/scanner"
	"go/token"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
)

// Parse parses the definitions in src. Positions of the returned declarations
// and errors are registered in fset.
func Parse(fset *token.FileSet, filename string, src []byte) ([]schema.Decl, error) {
	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)
	c := converter{f: codefmt.Formatter{Fset: fset}, file: file, src: src}

	ast, err := parser.ParseBytes(filename, src)
	if err != nil {
		var pe participle.Error
		if errors.As(err, &pe) {
			return nil, c.f.Errorf(c.pos(pe.Position()), "%s", pe.Message())
		}
		return nil, err
	}

	var decls []schema.Decl
	var errs []error
	for _, e := range ast.Enums {
		decl, err := c.enum(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, decl)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return decls, nil
}

type converter struct {
	f    codefmt.Formatter
	file *token.File
	src  []byte
}

func (c converter) pos(p lexer.Position) codefmt.Poser {
	if p.Offset < 0 || p.Offset > c.file.Size() {
		return codefmt.Pos(token.NoPos)
	}
	return codefmt.Pos(c.file.Pos(p.Offset))
}

func (c converter) enum(e *Enum) (schema.Decl, error) {
	decl := schema.Decl{Name: e.Name.Value, Pos: c.pos(e.Name.Pos).Pos()}
	for _, attr := range e.Attrs {
		if attr.Name != "repr" {
			continue
		}
		if len(attr.Args) != 1 {
			return decl, c.f.Errorf(c.pos(attr.Pos), "#[repr] takes exactly one integer type")
		}
		decl.Repr = attr.Args[0]
	}

	for _, v := range e.Values {
		vd, err := c.variant(v)
		if err != nil {
			return decl, err
		}
		decl.Variants = append(decl.Variants, vd)
	}
	return decl, nil
}

func (c converter) variant(v *Variant) (schema.VariantDecl, error) {
	vd := schema.VariantDecl{Name: v.Name.Value, Pos: c.pos(v.Name.Pos).Pos()}
	for _, attr := range v.Attrs {
		switch attr.Name {
		case "unknown":
			vd.Unknown = true
		case "enumconv":
			if !slices.Equal(attr.Args, []string{"unknown"}) {
				return vd, c.f.Errorf(c.pos(attr.Pos), `unexpected args; only "unknown" is supported`)
			}
			vd.Unknown = true
		}
	}

	if v.Payload != "" && !vd.Unknown {
		return vd, c.f.Errorf(c.pos(v.Pos), "only the unknown variant can wrap an integer")
	}

	if v.Value != nil {
		src := trimExpr(string(c.src[v.Value.Pos.Offset:v.Value.EndPos.Offset]))
		expr, err := schema.ParseExpr(src)
		if err != nil {
			return vd, c.f.Errorf(c.pos(v.Value.Pos), "invalid discriminant expression %q", src)
		}
		vd.Value = &expr
	}
	return vd, nil
}

// trimExpr cuts trailing whitespace and comments that the grammar includes in
// the extent of an expression.
func trimExpr(src string) string {
	var s scanner.Scanner
	file := token.NewFileSet().AddFile("", -1, len(src))
	s.Init(file, []byte(src), nil, 0)

	end := 0
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		n := len(lit)
		if lit == "" {
			n = len(tok.String())
		}
		end = file.Offset(pos) + n
	}
	return strings.TrimSpace(src[:end])
}
