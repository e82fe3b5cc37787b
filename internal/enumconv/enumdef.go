package enumconvinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"maps"
	"path/filepath"
	"slices"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/enumconv/emit"
	"github.com/sublee/enumconv/internal/enumdef"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
)

// GenerateEnumFile generates Go code of package pkgName from the textual enum
// definitions in src. Identifiers in explicit discriminants must be resolvable
// in the target package.
func GenerateEnumFile(fset *token.FileSet, pkgName, filename string, src []byte) ([]byte, error) {
	decls, err := enumdef.Parse(fset, filename, src)
	if err != nil {
		return nil, err
	}
	f := codefmt.Formatter{Fset: fset}

	var errs error
	var convs []*synth.Conversions
	ns := make(codefmt.NS)
	declared := make(map[string]string)
	for _, decl := range decls {
		s, err := schema.Build(decl)
		if err != nil {
			errs = errors.Join(errs, f.Wrap(codefmt.Pos(schema.ErrorPos(err, decl.Pos)), err))
			continue
		}
		if err := emit.Check(s); err != nil {
			errs = errors.Join(errs, f.Wrap(codefmt.Pos(decl.Pos), err))
			continue
		}
		if err := checkLiterals(f, s); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, name := range emit.Decls(s, emit.Options{Prefix: s.Name}) {
			if prev, ok := declared[name]; ok {
				err := f.Errorf(codefmt.Pos(decl.Pos), "cannot generate %s; %s is also generated for %s", s.Name, name, prev)
				errs = errors.Join(errs, err)
				continue
			}
			declared[name] = s.Name
			ns.Reserve(name)
		}
		convs = append(convs, synth.Synthesize(s, ns))
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}
	if len(convs) == 0 {
		return nil, nil
	}

	var body bytes.Buffer
	w := codefmt.NewWriter(&body, nil)
	for _, c := range convs {
		emit.Write(w, c, emit.Options{Prefix: c.Schema.Name})
	}

	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/enumconv%s from %s. DO NOT EDIT.\n", versionSuffix, filepath.Base(filename))
	fmt.Fprintf(&buf, "package %s\n", pkgName)
	if len(w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(w.Imports())) {
			imp := w.Imports()[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}
	buf.Write(body.Bytes())

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code of %s: %w", filename, err)
	}
	return code, nil
}

// checkLiterals reports explicit literals that do not fit the representation.
// Such a literal is kept as a symbolic base, and its conversion to the
// representation would not compile.
func checkLiterals(f codefmt.Formatter, s *schema.Schema) error {
	var errs error
	for v := range s.Normals() {
		if !v.Disc.IsSymbolic() || v.Disc.Offset != 0 {
			continue
		}
		lit, ok := v.Disc.Base.IntLit()
		if !ok || s.Repr.Fits(lit) {
			continue
		}
		err := fmt.Errorf("discriminant %s of %s overflows %s: %w", lit.ExactString(), v.Name, s.Repr, schema.ErrDiscriminantOverflow)
		errs = errors.Join(errs, f.Wrap(codefmt.Pos(v.Pos), err))
	}
	return errs
}
