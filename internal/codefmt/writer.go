package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code and collects the packages it needs to import.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
}

// NewWriter creates a new [Writer] for code of pkg. If pkg is nil, the
// written code is not bound to any package and [RewriteImports] must not be
// used.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf]. Packages referred by expressions are not imported;
// rewrite them with [RewriteImports] first.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf is like [Writer.Printf] but returns the string.
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// Import is a package the generated code refers to.
type Import struct {
	*types.Package

	// HasAlias is set when the name differs from the name the package
	// declares, so the import spec needs the name.
	HasAlias bool
}

// Imports returns the collected imports keyed by their names. Imports are
// collected by [Writer.Import] and [RewriteImports].
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import adds an import for the package with the given path and alias. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
//
// When calling it, the package to import is recorded. Call [Imports] to
// retrieve them.
func (w *Writer) Import(path, name string) string {
	var pkgName string
	if w.pkg != nil {
		for _, imp := range w.pkg.Types.Imports() {
			if imp.Path() == path {
				pkgName = imp.Name()
				break
			}
		}
	}

	if name == "" {
		name = pkgName
	}
	if pkgName == "" {
		pkgName = name
	}
	pkg := types.NewPackage(path, name)

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == path {
			// Already imported with the same name.
			return name
		}
		if !ok && !w.declared(name) {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkgName}
			pkg.SetName(name)
			return name
		}
	}

	panic("unreachable")
}

// declared reports whether name is declared in the package scope. It is false
// for a writer without a package.
func (w *Writer) declared(name string) bool {
	return w.pkg != nil && w.pkg.Types.Scope().Lookup(name) != nil
}

// RewriteImports modifies the given AST node to rewrite imported package names
// to ensure there is no name conflict.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {

		// Unqualified identifiers, such as "Println" without the "fmt." prefix
		case *ast.Ident:
			obj := w.pkg.TypesInfo.ObjectOf(node)
			if obj == nil {
				return false
			}

			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}

			newPkgName := w.Import(pkg.Path(), pkg.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: node.NamePos,
					Name:    newPkgName,
				},
				Sel: &ast.Ident{
					NamePos: node.NamePos + token.Pos(len(newPkgName)+1),
					Name:    node.Name,
					Obj:     node.Obj,
				},
			})
			return false

		// Qualified identifiers, such as "fmt.Println"
		case *ast.SelectorExpr:
			pkgIdent, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}

			pkgName, ok := w.pkg.TypesInfo.ObjectOf(pkgIdent).(*types.PkgName)
			if !ok {
				// The qualifier is not a package name.
				return true
			}

			pkg := pkgName.Imported()
			newPkgName := w.Import(pkg.Path(), pkg.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: pkgIdent.NamePos,
					Name:    newPkgName,
					Obj:     pkgIdent.Obj,
				},
				Sel: &ast.Ident{
					NamePos: pkgIdent.NamePos + token.Pos(len(pkgIdent.Name)+1),
					Name:    node.Sel.Name,
					Obj:     node.Sel.Obj,
				},
			})
			return false
		}

		// Continue traversing the AST.
		return true
	}, nil).(T)
}
