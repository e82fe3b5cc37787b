// Package enumconv provides directives for generating integer-backed enums
// with bidirectional conversions to their representation.
//
// Declare an enum once with its representation and variants, and the
// generator produces a named integer type, a constant or variable for every
// variant, and the conversions between the type and its representation.
// Discriminants are numbered like C enums: a variant without an explicit value
// follows the previous one, and an explicit value re-anchors the sequence.
//
// To start with enumconv, add a build constraint to files containing enumconv
// directives:
//
//	//go:build enumconv
//
// Then declare an enum by assigning [Enum] to a package-level variable. The
// variable name becomes the type name:
//
//	// source:
//	var Number = enumconv.Enum(
//		enumconv.Repr("u8"),
//		enumconv.Variant("Zero"),
//		enumconv.Variant("One"),
//		enumconv.Value("Ten", 10),
//		enumconv.Variant("Eleven"),
//	)
//
//	// generated: (simplified)
//	type Number uint8
//
//	const (
//		NumberZero   Number = 0
//		NumberOne    Number = 1
//		NumberTen    Number = 10
//		NumberEleven Number = 11
//	)
//
//	func (n Number) Uint8() uint8
//	func (n Number) TryUint8() (uint8, error)
//	func NumberFromUint8(v uint8) Number
//	func NumberTryFromUint8(v uint8) (Number, error)
//
// After declaring enums, run the enumconv command. It will generate
// enumconv_gen.go for your package:
//
//	go run github.com/sublee/enumconv/cmd/enumconv
//
// # Unknown variant
//
// An enum may have one unknown variant declared by [Unknown]. It absorbs every
// integer that is not a discriminant of another variant, so the conversions
// never fail and round-trip losslessly:
//
//	// source:
//	var Number = enumconv.Enum(
//		enumconv.Repr("u8"),
//		enumconv.Variant("Zero"),
//		enumconv.Unknown("Other"),
//	)
//
//	// generated: (simplified)
//	func NumberOther(v uint8) Number
//	func (n Number) IsOther() bool
//
// Without an unknown variant, the strict conversions panic on an integer that
// is not a discriminant, and the Try conversions return
// enumconverrors.UnknownVariantError.
//
// # Symbolic discriminants
//
// An explicit value that is not a plain integer literal, such as a named
// constant or an arithmetic expression, is kept symbolic. Following variants
// are defined as offsets from it in the generated code, and the additions wrap
// at the width of the representation:
//
//	// source:
//	var Number = enumconv.Enum(
//		enumconv.Repr("u8"),
//		enumconv.Value("Twenty", Base+10),
//		enumconv.Variant("TwentyOne"),
//	)
//
//	// generated: (simplified)
//	var (
//		numberDisc0 = uint8(Base + 10)
//		numberDisc1 = numberDisc0 + 1
//	)
//
//	var (
//		NumberTwenty    = Number(numberDisc0)
//		NumberTwentyOne = Number(numberDisc1)
//	)
//
// Representations u64, usize, isize, int and uint keep even literal values
// symbolic.
//
// Two variants may resolve to the same discriminant. The first declared one
// wins when converting the integer back.
package enumconv

// enum is the placeholder type of an enum declaration. This is unexported so
// there is no way to declare an enum other than [Enum].
type enum *struct{}

// Option configures an enum declared by [Enum].
type Option interface{ enumOption() }

// Integer is the set of types [Value] accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Enum declares an enum. It must be assigned to a package-level variable, which
// is replaced by the generated type of the same name. [Repr] is required.
// Variants are numbered in the order of options.
func Enum(opts ...Option) enum {
	panic("enumconv: not generated")
}

// Repr sets the integer type that stores discriminants. It accepts Rust-style
// names (i8, i16, i32, i64, i128, isize, u8, u16, u32, u64, u128, usize) and Go
// names (int8, int16, int32, int64, int, uint8, uint16, uint32, uint64, uint).
// 128-bit representations are recognized but cannot be generated.
func Repr(typ string) Option {
	panic("enumconv: not generated")
}

// Variant declares a variant whose discriminant follows the previous variant.
// The first variant starts at 0.
func Variant(name string) Option {
	panic("enumconv: not generated")
}

// Value declares a variant with an explicit discriminant. value may be any
// integer expression valid in a package-level variable declaration.
func Value[T Integer](name string, value T) Option {
	panic("enumconv: not generated")
}

// Unknown declares the unknown variant. An enum can have at most one unknown
// variant and it has no discriminant of its own.
func Unknown(name string) Option {
	panic("enumconv: not generated")
}

// ConstPrefix overrides the prefix of variant names. By default, variants are
// prefixed by the enum name, e.g., NumberZero. An empty prefix declares
// variants by their bare names.
func ConstPrefix(prefix string) Option {
	panic("enumconv: not generated")
}
