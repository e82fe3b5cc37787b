//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

const Base = 100

// Number has every kind of variant.
var Number = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Variant("Zero"),
	enumconv.Value("Ten", 10),
	enumconv.Value("Hundred", Base),
	enumconv.Variant("HundredOne"),
	enumconv.Unknown("Other"),
)

var (
	Sign = enumconv.Enum(
		enumconv.Repr("i8"),
		enumconv.Value("Minus", -1),
		enumconv.Variant("Zero"),
		enumconv.Variant("Plus"),
	)

	Plain = enumconv.Enum(enumconv.Repr("usize"), enumconv.Variant("A"), enumconv.ConstPrefix(""))
)
