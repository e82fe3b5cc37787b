package emit

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
)

func conv(t *testing.T, repr string, decls ...string) *synth.Conversions {
	t.Helper()

	// "Name", "Name=expr", or "?Name" for the unknown variant
	var variants []schema.VariantDecl
	for _, d := range decls {
		var vd schema.VariantDecl
		if d[0] == '?' {
			vd = schema.VariantDecl{Name: d[1:], Unknown: true}
		} else if name, src, ok := strings.Cut(d, "="); ok {
			expr, err := schema.ParseExpr(src)
			require.NoError(t, err)
			vd = schema.VariantDecl{Name: name, Value: &expr}
		} else {
			vd = schema.VariantDecl{Name: d}
		}
		variants = append(variants, vd)
	}

	s, err := schema.Build(schema.Decl{Name: "Number", Repr: repr, Variants: variants})
	require.NoError(t, err)
	require.NoError(t, Check(s))
	return synth.Synthesize(s, make(codefmt.NS))
}

// generate renders c into a formatted file of package p.
func generate(t *testing.T, c *synth.Conversions, opts Options) string {
	t.Helper()

	var body bytes.Buffer
	w := codefmt.NewWriter(&body, nil)
	Write(w, c, opts)

	var src bytes.Buffer
	src.WriteString("package p\n\n")
	if imports := w.Imports(); len(imports) != 0 {
		src.WriteString("import (\n")
		for alias, imp := range imports {
			fmt.Fprintf(&src, "%s %q\n", alias, imp.Path())
		}
		src.WriteString(")\n\n")
	}
	src.Write(body.Bytes())

	out, err := format.Source(src.Bytes())
	require.NoError(t, err, src.String())
	return string(out)
}

var stubs = map[string]string{
	"fmt": `package fmt
func Sprintf(format string, a ...any) string { return "" }`,

	errorsPkgPath: `package enumconverrors
type UnknownVariantError struct {
	Enum  string
	Value any
}
func (e *UnknownVariantError) Error() string { return "" }`,
}

type stubImporter struct{ fset *token.FileSet }

func (imp stubImporter) Import(path string) (*types.Package, error) {
	src, ok := stubs[path]
	if !ok {
		return importer.Default().Import(path)
	}
	f, err := parser.ParseFile(imp.fset, path+".go", src, 0)
	if err != nil {
		return nil, err
	}
	conf := types.Config{}
	return conf.Check(path, imp.fset, []*ast.File{f}, nil)
}

// typeCheck checks the generated code with extra declarations of package p.
func typeCheck(t *testing.T, code string, extra string) {
	t.Helper()

	fset := token.NewFileSet()
	files := []*ast.File{}
	f, err := parser.ParseFile(fset, "gen.go", code, 0)
	require.NoError(t, err)
	files = append(files, f)

	if extra != "" {
		f, err := parser.ParseFile(fset, "extra.go", "package p\n"+extra, 0)
		require.NoError(t, err)
		files = append(files, f)
	}

	conf := types.Config{Importer: stubImporter{fset}}
	_, err = conf.Check("p", fset, files, nil)
	require.NoError(t, err, code)
}

func assertCode(t *testing.T, code string, want ...string) {
	t.Helper()
	normalized := strings.Join(strings.Fields(code), " ")
	for _, w := range want {
		assert.Contains(t, normalized, strings.Join(strings.Fields(w), " "))
	}
}

func TestLiteralWithUnknown(t *testing.T) {
	c := conv(t, "u8", "Zero", "One", "Ten=10", "Eleven", "?Other")
	code := generate(t, c, Options{Prefix: "Number"})
	typeCheck(t, code, "")

	assertCode(t, code,
		"type Number uint8",
		"NumberZero Number = 0",
		"NumberEleven Number = 11",
		"func (n Number) Uint8() uint8 { switch n { case NumberZero: return 0",
		"} return uint8(n) }",
		"func NumberFromUint8(v uint8) Number { switch v { case 0: return NumberZero",
		"} return NumberOther(v) }",
		"func NumberTryFromUint8(v uint8) (Number, error) {",
		"return NumberOther(v), nil",
		"func NumberOther(v uint8) Number { return Number(v) }",
		"func (n Number) IsOther() bool { switch n { case NumberZero, NumberOne, NumberTen, NumberEleven: return false } return true }",
		`return fmt.Sprintf("Other(%d)", uint8(n))`,
	)
	assert.NotContains(t, code, "enumconverrors")
	assert.NotContains(t, code, "panic(")
}

func TestWithoutUnknown(t *testing.T) {
	c := conv(t, "i16", "A", "B")
	code := generate(t, c, Options{Prefix: "Number"})
	typeCheck(t, code, "")

	assertCode(t, code,
		`panic(fmt.Sprintf("enumconv: unknown variant of Number: %d", int16(n)))`,
		`panic(fmt.Sprintf("enumconv: unknown discriminant of Number: %d", v))`,
		`return 0, &enumconverrors.UnknownVariantError{Enum: "Number", Value: int16(n)}`,
		`return 0, &enumconverrors.UnknownVariantError{Enum: "Number", Value: v}`,
		`return fmt.Sprintf("Number(%d)", int16(n))`,
	)
	assert.NotContains(t, code, "IsUnknown")
}

func TestSymbolic(t *testing.T) {
	c := conv(t, "u8", "Zero", "Twenty=Base + 10", "TwentyOne", "?Other")
	code := generate(t, c, Options{Prefix: "Number"})
	typeCheck(t, code, "const Base = 10")

	assertCode(t, code,
		"numberDisc0 = uint8(Base + 10)",
		"numberDisc1 = numberDisc0 + 1",
		"NumberTwenty = Number(numberDisc0)",
		"NumberTwentyOne = Number(numberDisc1)",
		"case NumberTwentyOne: return numberDisc1",
		"case numberDisc1: return NumberTwentyOne",
	)
}

func TestExprOption(t *testing.T) {
	c := conv(t, "u8", "A=Base")
	code := generate(t, c, Options{
		Prefix: "Number",
		Expr:   func(e schema.Expr) string { return "q." + e.Src },
	})
	assertCode(t, code, "numberDisc0 = uint8(q.Base)")
}

func TestShadowedDuplicates(t *testing.T) {
	c := conv(t, "u8", "Ten=10", "Dix=10", "Eleven", "?Other")
	code := generate(t, c, Options{Prefix: "Number"})

	// Duplicate constant cases would not compile.
	typeCheck(t, code, "")
	assertCode(t, code, "NumberDix Number = 10", "case 10: return NumberTen")
	assert.NotContains(t, code, "return NumberDix")
}

func TestSignedWraparound(t *testing.T) {
	c := conv(t, "i8", "Top=100 + 27", "Bottom")
	code := generate(t, c, Options{Prefix: "Number"})
	typeCheck(t, code, "")
	assertCode(t, code, "numberDisc0 = int8(100 + 27)", "numberDisc1 = numberDisc0 + 1")
}

func TestLongSymbolicRun(t *testing.T) {
	decls := []string{"Base=Start"}
	for i := range 300 {
		decls = append(decls, fmt.Sprintf("V%d", i))
	}
	c := conv(t, "u8", decls...)
	code := generate(t, c, Options{Prefix: ""})
	typeCheck(t, code, "const Start = 0")

	// 300 wraps to 44 in uint8
	assertCode(t, code, "numberDisc300 = numberDisc0 + 44")
}

func TestSignedHalfRangeRun(t *testing.T) {
	decls := []string{"Base=Start"}
	for i := range 129 {
		decls = append(decls, fmt.Sprintf("V%d", i))
	}
	c := conv(t, "i8", decls...)
	code := generate(t, c, Options{Prefix: ""})
	typeCheck(t, code, "const Start = 0")

	assertCode(t, code,
		"numberDisc127 = numberDisc0 + 127",
		"numberDisc128 = numberDisc0 + -128",
		"numberDisc129 = numberDisc0 - 127",
	)
}

func TestEmptyPrefix(t *testing.T) {
	c := conv(t, "u32", "Zero", "?Other")
	code := generate(t, c, Options{Prefix: ""})
	typeCheck(t, code, "")
	assertCode(t, code, "Zero Number = 0", "func Other(v uint32) Number", "func NumberFromUint32(v uint32) Number")
}

func TestPlatformSized(t *testing.T) {
	c := conv(t, "usize", "A", "B=7", "C")
	code := generate(t, c, Options{Prefix: "Number"})
	typeCheck(t, code, "")
	assertCode(t, code, "type Number uint", "func (n Number) Uint() uint", "numberDisc0 = uint(7)")
}

func TestDoc(t *testing.T) {
	c := conv(t, "u8", "A")
	doc := &ast.CommentGroup{List: []*ast.Comment{{Text: "// Number is a number."}}}
	code := generate(t, c, Options{Prefix: "Number", Doc: doc})
	assertCode(t, code, "// Number is a number.\ntype Number uint8")
}

func TestCheck128(t *testing.T) {
	s, err := schema.Build(schema.Decl{Name: "Wide", Repr: "u128", Variants: []schema.VariantDecl{{Name: "A"}}})
	require.NoError(t, err)

	err = Check(s)
	assert.ErrorIs(t, err, ErrNoGoType)
	assert.EqualError(t, err, "cannot generate Wide; u128 has no Go integer type")
}

func TestDecls(t *testing.T) {
	c := conv(t, "u8", "A", "?U")
	assert.Equal(t,
		[]string{"Number", "NumberFromUint8", "NumberTryFromUint8", "NumberA", "NumberU"},
		Decls(c.Schema, Options{Prefix: "Number"}))
	assert.Equal(t, []string{"Uint8", "TryUint8", "String", "IsU"}, Methods(c.Schema))
}

func TestWrapOffset(t *testing.T) {
	u8, _ := schema.ParseRepr("u8")
	i8, _ := schema.ParseRepr("i8")
	i64, _ := schema.ParseRepr("i64")
	u64, _ := schema.ParseRepr("u64")

	cases := []struct {
		off  uint64
		repr schema.Repr
		want string
	}{
		{1, u8, "+ 1"},
		{300, u8, "+ 44"},
		{127, i8, "+ 127"},
		{128, i8, "+ -128"},
		{129, i8, "- 127"},
		{200, i8, "- 56"},
		{256, i8, "+ 0"},
		{1 << 63, i64, "+ -9223372036854775808"},
		{1<<63 + 1, i64, "- 9223372036854775807"},
		{1 << 63, u64, "+ 9223372036854775808"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wrapOffset(c.off, c.repr), "%d %s", c.off, c.repr)
	}
}
