//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

var A = enumconv.Enum(enumconv.Variant("X")) // want `A has no representation; declare one of the integer types`

var B = enumconv.Enum(enumconv.Repr("f32"), enumconv.Variant("X")) // want `unexpected representation "f32"; must be an integer type`

var C = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Variant("X"),
	enumconv.Variant("X"), // want `duplicate variant: X`
)

var D = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Unknown("U"),
	enumconv.Unknown("V"), // want `cannot declare V as unknown variant; an enum can only have one unknown variant`
)

var E = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Value("Last", 255),
	enumconv.Variant("Overflow"), // want `discriminant 256 overflows u8`
)

var F = enumconv.Enum(enumconv.Repr("u128"), enumconv.Variant("X")) // want `cannot generate F; u128 has no Go integer type`

var G = enumconv.Enum(
	enumconv.Repr("i8"),
	enumconv.Value("Big", 200), // want `discriminant 200 of Big overflows i8`
)

var notConst = 1

var H = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Value("Var", notConst), // want `discriminant notConst of Var is not an integer constant`
)
