package enumconvinternal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/enumconv/emit"
	"github.com/sublee/enumconv/internal/enumconv/parse"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
)

// Enumconv generates enum code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Enumconv struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums []enum
}

type enum struct {
	*parse.Enum
	conv *synth.Conversions
}

// New creates a new [Enumconv] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Enumconv, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Enumconv{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing enums and synthesizing their
// conversions. All potential errors are returned by this method. It must be
// called before [Generate].
func (ec *Enumconv) Build() error {
	enums, errs := ec.p.ParseEnums()
	errs = errors.Join(errs, ec.p.Validate(enums))
	if errs != nil {
		return errs
	}
	if len(enums) == 0 {
		return nil
	}

	sorted := slices.SortedFunc(maps.Values(enums), func(a, b *parse.Enum) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	// Build all schemas first to reserve the declared names before hoisted
	// discriminants claim theirs.
	schemas := make([]*schema.Schema, len(sorted))
	declared := make(map[string]*parse.Enum)
	for i, e := range sorted {
		s, err := schema.Build(e.Decl)
		if err != nil {
			errs = errors.Join(errs, ec.wrapSchemaError(e, err))
			continue
		}
		if err := emit.Check(s); err != nil {
			errs = errors.Join(errs, codefmt.Wrap(ec.p, e, err))
			continue
		}

		for _, name := range emit.Decls(s, ec.options(e)) {
			if prev, ok := declared[name]; ok {
				err := codefmt.Errorf(ec.p, e, "cannot generate %s; %s is also generated for %s at %b", e.Decl.Name, name, prev.Decl.Name, prev.Pos())
				errs = errors.Join(errs, err)
				continue
			}
			declared[name] = e

			obj := ec.p.Pkg().Types.Scope().Lookup(name)
			if obj != nil && obj.Pos() != e.Pos() {
				err := codefmt.Errorf(ec.p, e, "cannot generate %s; %s is already declared at %b", e.Decl.Name, name, obj)
				errs = errors.Join(errs, err)
			}
		}
		errs = errors.Join(errs, ec.checkDiscs(s))
		errs = errors.Join(errs, ec.checkMethods(e, s))
		schemas[i] = s
	}
	if errs != nil {
		return errs
	}

	for name := range declared {
		ec.ns.Reserve(name)
	}
	for i, e := range sorted {
		conv := synth.Synthesize(schemas[i], ec.ns)
		ec.enums = append(ec.enums, enum{Enum: e, conv: conv})
	}
	return nil
}

// wrapSchemaError attaches the position of the offending variant to a schema
// error.
func (ec *Enumconv) wrapSchemaError(e *parse.Enum, err error) error {
	return codefmt.Wrap(ec.p, codefmt.Pos(schema.ErrorPos(err, e.Pos())), err)
}

// checkDiscs checks explicit discriminants by their constant values known to
// the type checker. Offsets from a symbolic base are not checked because they
// wrap at run time.
func (ec *Enumconv) checkDiscs(s *schema.Schema) error {
	var errs error
	for v := range s.Normals() {
		if !v.Disc.IsSymbolic() || v.Disc.Offset != 0 || v.Disc.Base.Node == nil {
			continue
		}

		expr := v.Disc.Base.Node
		tv, ok := ec.p.Pkg().TypesInfo.Types[expr]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
			err := codefmt.Errorf(ec.p, expr, "discriminant %c of %s is not an integer constant", expr, v.Name)
			errs = errors.Join(errs, err)
			continue
		}

		if !s.Repr.Fits(tv.Value) {
			err := fmt.Errorf("discriminant %s of %s overflows %s: %w", tv.Value.ExactString(), v.Name, s.Repr, schema.ErrDiscriminantOverflow)
			errs = errors.Join(errs, codefmt.Wrap(ec.p, expr, err))
		}
	}
	return errs
}

// checkMethods checks methods declared on the enum type by hand. They are
// declared in files without the build tag, so the type checker has not seen
// them.
func (ec *Enumconv) checkMethods(e *parse.Enum, s *schema.Schema) error {
	generated := emit.Methods(s)

	var errs error
	for _, file := range ec.p.Pkg().Syntax {
		if parse.HasBuildTag(file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
				continue
			}

			recv := fn.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			id, ok := recv.(*ast.Ident)
			if !ok || id.Name != e.Decl.Name {
				continue
			}

			if slices.Contains(generated, fn.Name.Name) {
				err := codefmt.Errorf(ec.p, fn.Name, "cannot declare method %s.%s; generated by enumconv", e.Decl.Name, fn.Name.Name)
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

func (ec *Enumconv) options(e *parse.Enum) emit.Options {
	return emit.Options{
		Prefix: e.Prefix,
		Doc:    e.Doc,
		Expr: func(x schema.Expr) string {
			if x.Node == nil {
				return x.Src
			}
			// Keep the qualifiers of imported constants valid in the
			// generated file.
			return ec.w.Sprintf("%c", codefmt.RewriteImports(ec.w, x.Node))
		},
	}
}

// Generate generates enum code for the package. It must be called after
// [Build] succeeds. It returns nil if the package declares no enums.
func (ec *Enumconv) Generate() []byte {
	if len(ec.enums) == 0 {
		return nil
	}
	ec.writeEnumCode()
	ec.mergeCode()
	return ec.frameCode()
}

// writeEnumCode writes the declarations of all enums in declaration order.
func (ec *Enumconv) writeEnumCode() {
	ec.w.Printf("// enumconv: enums\n\n")
	for _, e := range ec.enums {
		emit.Write(ec.w, e.conv, ec.options(e.Enum))
	}
}

// mergeCode copies non-enumconv code from the source files tagged with
// "//go:build enumconv". It erases enum declarations to remove any references
// to the enumconv package.
func (ec *Enumconv) mergeCode() {
	calls := make(map[token.Pos]struct{})
	for _, e := range ec.enums {
		calls[e.Call.Pos()] = struct{}{}
	}

	for _, file := range ec.p.EnumconvGoFiles() {
		name := filepath.Base(ec.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Erase enum declarations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := calls[ast.Unparen(spec.Values[i]).Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( Number = enumconv.Enum(...) )
					// Output: var ()
					c.Delete()
				} else if len(names) != len(spec.Names) {
					// Input:  var ( Number, b = enumconv.Enum(...), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(ec.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(ec.w, decl)

			// The doc comment of an erased enum moves to the generated type.
			comments := slices.DeleteFunc(slices.Clone(file.Comments), func(cg *ast.CommentGroup) bool {
				return ec.isEnumDoc(cg)
			})
			printer.Fprint(ec.buf, ec.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: comments,
			})
			fmt.Fprintf(ec.buf, "\n\n")
		}
	}
}

func (ec *Enumconv) isEnumDoc(cg *ast.CommentGroup) bool {
	for _, e := range ec.enums {
		if e.Doc == cg {
			return true
		}
	}
	return false
}

func (ec *Enumconv) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/enumconv%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", ec.p.Pkg().Name)

	if len(ec.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(ec.w.Imports())) {
			imp := ec.w.Imports()[alias]
			if parse.IsEnumconvImport(imp.Path()) {
				log.Warningf("enumconv import remains in package %s", ec.p.Pkg().PkgPath)
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, ec.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
