// Package emit renders synthesized conversions as Go source code.
//
// An enum becomes a named integer type. Literal variants are constants;
// symbolic variants are package-level variables realized from hoisted
// discriminants, so that offsets from a symbolic base wrap at run time. For an
// enum Number over uint8 with the unknown variant Other, the generated API is:
//
//	type Number uint8
//	func (n Number) Uint8() uint8
//	func (n Number) TryUint8() (uint8, error)
//	func NumberFromUint8(v uint8) Number
//	func NumberTryFromUint8(v uint8) (Number, error)
//	func NumberOther(v uint8) Number
//	func (n Number) IsOther() bool
//	func (n Number) String() string
package emit

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
)

const errorsPkgPath = "github.com/sublee/enumconv/pkg/enumconverrors"

// ErrNoGoType is returned by [Check] for representations Go cannot express.
var ErrNoGoType = errors.New("no Go integer type")

// Options controls how an enum is rendered.
type Options struct {
	// Prefix is prepended to variant names to name their constants and the
	// unknown variant constructor. It is usually the enum name.
	Prefix string

	// Doc is the doc comment of the generated type. It may be nil.
	Doc *ast.CommentGroup

	// Expr renders an explicit discriminant expression. If nil, the source
	// text of the expression is used.
	Expr func(schema.Expr) string
}

// Check reports whether the schema can be rendered. Once it passes, [Write]
// never fails.
func Check(s *schema.Schema) error {
	if _, ok := s.Repr.GoType(); !ok {
		return fmt.Errorf("cannot generate %s; %s has %w", s.Name, s.Repr, ErrNoGoType)
	}
	return nil
}

// Decls returns the package-level names [Write] declares except hoisted
// discriminants, which are claimed by [synth.Synthesize]. The schema must pass
// [Check].
func Decls(s *schema.Schema, opts Options) []string {
	e := newEnum(&synth.Conversions{Schema: s}, opts)
	names := []string{e.name, e.fromFunc, e.tryFromFunc}
	for _, v := range s.Variants {
		names = append(names, e.prefix+v.Name)
	}
	return names
}

// Methods returns the names of the methods [Write] declares on the enum type.
func Methods(s *schema.Schema) []string {
	e := newEnum(&synth.Conversions{Schema: s}, Options{})
	names := []string{e.toMethod, e.tryToMethod, "String"}
	if s.Unknown != nil {
		names = append(names, "Is"+s.Unknown.Name)
	}
	return names
}

type enum struct {
	c    *synth.Conversions
	opts Options

	name   string
	prefix string
	repr   string

	toMethod    string
	tryToMethod string
	fromFunc    string
	tryFromFunc string
}

func newEnum(c *synth.Conversions, opts Options) enum {
	repr, ok := c.Schema.Repr.GoType()
	if !ok {
		panic(fmt.Sprintf("emit: %s has no Go integer type", c.Schema.Repr))
	}

	name := c.Schema.Name
	method := codefmt.Export(repr)
	return enum{
		c:           c,
		opts:        opts,
		name:        name,
		prefix:      opts.Prefix,
		repr:        repr,
		toMethod:    method,
		tryToMethod: "Try" + method,
		fromFunc:    name + "From" + method,
		tryFromFunc: name + "TryFrom" + method,
	}
}

// Write renders the enum. The schema must pass [Check].
func Write(w *codefmt.Writer, c *synth.Conversions, opts Options) {
	e := newEnum(c, opts)
	e.writeType(w)
	e.writeVariants(w)
	e.writeToInt(w, c.ToInt)
	e.writeTryToInt(w, c.TryToInt)
	e.writeFromInt(w, c.FromInt)
	e.writeTryFromInt(w, c.TryFromInt)
	if u := c.Schema.Unknown; u != nil {
		e.writeUnknown(w, u.Name)
	}
	e.writeString(w)
}

func (e enum) variant(name string) string { return e.prefix + name }

func (e enum) expr(x schema.Expr) string {
	if e.opts.Expr != nil {
		return e.opts.Expr(x)
	}
	return x.Src
}

func (e enum) writeType(w *codefmt.Writer) {
	if e.opts.Doc != nil {
		for _, c := range e.opts.Doc.List {
			w.Printf("%s\n", c.Text)
		}
	}
	w.Printf("type %s %s\n\n", e.name, e.repr)
}

func (e enum) writeVariants(w *codefmt.Writer) {
	var lits, syms []schema.Variant
	for v := range e.c.Schema.Normals() {
		if v.Disc.IsSymbolic() {
			syms = append(syms, v)
		} else {
			lits = append(lits, v)
		}
	}

	if len(lits) != 0 {
		w.Printf("const (\n")
		for _, v := range lits {
			w.Printf("%s %s = %s\n", e.variant(v.Name), e.name, v.Disc.Value.ExactString())
		}
		w.Printf(")\n\n")
	}

	if len(e.c.Consts) != 0 {
		w.Printf("var (\n")
		for _, k := range e.c.Consts {
			if k.IsAnchor() {
				w.Printf("%s = %s(%s)\n", k.Name, e.repr, e.expr(*k.Base))
				continue
			}
			w.Printf("%s = %s %s\n", k.Name, k.From, wrapOffset(k.Offset, k.Repr))
		}
		w.Printf(")\n\n")
	}

	if len(syms) != 0 {
		w.Printf("var (\n")
		for _, v := range syms {
			w.Printf("%s = %s(%s)\n", e.variant(v.Name), e.name, e.c.Discs[v.Name].Const)
		}
		w.Printf(")\n\n")
	}
}

// wrapOffset reduces an offset modulo the width of the representation and
// renders it as a term to add, so that the constant is valid for the
// representation.
func wrapOffset(off uint64, repr schema.Repr) string {
	if repr.Bits < 64 {
		off %= 1 << repr.Bits
	}
	half := uint64(1) << (repr.Bits - 1)
	switch {
	case !repr.Signed || off < half:
		return fmt.Sprintf("+ %d", off)
	case off == half:
		// 2^(bits-1) overflows but wraps the same as its negation.
		return fmt.Sprintf("+ -%d", half)
	}
	// Adding -x wraps the same as adding 2^bits - x.
	if repr.Bits == 64 {
		return fmt.Sprintf("- %d", -off)
	}
	return fmt.Sprintf("- %d", (1<<repr.Bits)-off)
}

func (e enum) disc(ref synth.Ref) string {
	if ref.IsConst() {
		return ref.Const
	}
	return ref.Lit.ExactString()
}

func (e enum) fmtPkg(w *codefmt.Writer) string { return w.Import("fmt", "fmt") }

func (e enum) unknownVariantError(w *codefmt.Writer, value string) string {
	pkg := w.Import(errorsPkgPath, "enumconverrors")
	return fmt.Sprintf("&%s.UnknownVariantError{Enum: %q, Value: %s}", pkg, e.name, value)
}

func (e enum) writeToInt(w *codefmt.Writer, op synth.Operation) {
	w.Printf("// %s returns the discriminant of n.", e.toMethod)
	if op.Fallback == synth.FallbackPanic {
		w.Printf(" It panics if n is not a variant of %s.", e.name)
	}
	w.Printf("\nfunc (n %s) %s() %s {\n", e.name, e.toMethod, e.repr)
	w.Printf("switch n {\n")
	for _, arm := range op.Live() {
		w.Printf("case %s:\nreturn %s\n", e.variant(arm.Variant), e.disc(arm.Disc))
	}
	w.Printf("}\n")
	switch op.Fallback {
	case synth.FallbackWrap:
		w.Printf("return %s(n)\n", e.repr)
	case synth.FallbackPanic:
		w.Printf("panic(%s.Sprintf(\"enumconv: unknown variant of %s: %%d\", %s(n)))\n", e.fmtPkg(w), e.name, e.repr)
	}
	w.Printf("}\n\n")
}

func (e enum) writeTryToInt(w *codefmt.Writer, op synth.Operation) {
	w.Printf("// %s returns the discriminant of n.", e.tryToMethod)
	if op.Fallback == synth.FallbackError {
		w.Printf(" It fails if n is not a variant of %s.", e.name)
	}
	w.Printf("\nfunc (n %s) %s() (%s, error) {\n", e.name, e.tryToMethod, e.repr)
	w.Printf("switch n {\n")
	for _, arm := range op.Live() {
		w.Printf("case %s:\nreturn %s, nil\n", e.variant(arm.Variant), e.disc(arm.Disc))
	}
	w.Printf("}\n")
	switch op.Fallback {
	case synth.FallbackWrap:
		w.Printf("return %s(n), nil\n", e.repr)
	case synth.FallbackError:
		w.Printf("return 0, %s\n", e.unknownVariantError(w, e.repr+"(n)"))
	}
	w.Printf("}\n\n")
}

func (e enum) writeFromInt(w *codefmt.Writer, op synth.Operation) {
	w.Printf("// %s returns the variant of the discriminant v.", e.fromFunc)
	if op.Fallback == synth.FallbackPanic {
		w.Printf(" It panics if v is not a discriminant of %s.", e.name)
	} else {
		w.Printf(" An unmatched v is wrapped by %s.", e.variant(op.Unknown))
	}
	w.Printf("\nfunc %s(v %s) %s {\n", e.fromFunc, e.repr, e.name)
	w.Printf("switch v {\n")
	for _, arm := range op.Live() {
		w.Printf("case %s:\nreturn %s\n", e.disc(arm.Disc), e.variant(arm.Variant))
	}
	w.Printf("}\n")
	switch op.Fallback {
	case synth.FallbackWrap:
		w.Printf("return %s(v)\n", e.variant(op.Unknown))
	case synth.FallbackPanic:
		w.Printf("panic(%s.Sprintf(\"enumconv: unknown discriminant of %s: %%d\", v))\n", e.fmtPkg(w), e.name)
	}
	w.Printf("}\n\n")
}

func (e enum) writeTryFromInt(w *codefmt.Writer, op synth.Operation) {
	w.Printf("// %s returns the variant of the discriminant v.", e.tryFromFunc)
	if op.Fallback == synth.FallbackError {
		w.Printf(" It fails if v is not a discriminant of %s.", e.name)
	}
	w.Printf("\nfunc %s(v %s) (%s, error) {\n", e.tryFromFunc, e.repr, e.name)
	w.Printf("switch v {\n")
	for _, arm := range op.Live() {
		w.Printf("case %s:\nreturn %s, nil\n", e.disc(arm.Disc), e.variant(arm.Variant))
	}
	w.Printf("}\n")
	switch op.Fallback {
	case synth.FallbackWrap:
		w.Printf("return %s(v), nil\n", e.variant(op.Unknown))
	case synth.FallbackError:
		w.Printf("return 0, %s\n", e.unknownVariantError(w, "v"))
	}
	w.Printf("}\n\n")
}

func (e enum) writeUnknown(w *codefmt.Writer, name string) {
	ctor := e.variant(name)
	w.Printf("// %s wraps v as the unknown variant of %s.\n", ctor, e.name)
	w.Printf("func %s(v %s) %s {\nreturn %s(v)\n}\n\n", ctor, e.repr, e.name, e.name)

	w.Printf("// Is%s reports whether n is not a declared variant of %s.\n", name, e.name)
	w.Printf("func (n %s) Is%s() bool {\n", e.name, name)
	if live := e.c.FromInt.Live(); len(live) != 0 {
		cases := make([]string, len(live))
		for i, arm := range live {
			cases[i] = e.variant(arm.Variant)
		}
		w.Printf("switch n {\ncase %s:\nreturn false\n}\n", strings.Join(cases, ", "))
	}
	w.Printf("return true\n}\n\n")
}

func (e enum) writeString(w *codefmt.Writer) {
	w.Printf("func (n %s) String() string {\n", e.name)
	w.Printf("switch n {\n")
	for _, arm := range e.c.ToInt.Live() {
		w.Printf("case %s:\nreturn %q\n", e.variant(arm.Variant), arm.Variant)
	}
	w.Printf("}\n")

	label := e.name
	if u := e.c.Schema.Unknown; u != nil {
		label = u.Name
	}
	w.Printf("return %s.Sprintf(\"%s(%%d)\", %s(n))\n", e.fmtPkg(w), label, e.repr)
	w.Printf("}\n\n")
}
