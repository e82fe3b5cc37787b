//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

const reprName = "u8"

var A = enumconv.Enum(enumconv.Repr(reprName)) // want `reprName is not string literal`

var B = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("1st")) // want `"1st" is not valid identifier`

var C = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Repr("u16"), // want `duplicate enumconv.Repr`
)

var opts []enumconv.Option

var D = enumconv.Enum(opts...) // want `cannot expand options of enumconv.Enum; declare them inline`

func myVariant() enumconv.Option { return nil }

var E = enumconv.Enum(enumconv.Repr("u8"), myVariant()) // want `cannot use myVariant\(\) as enum option; need inline enumconv directive`

var F = enumconv.Enum(enumconv.Repr("u8"), enumconv.ConstPrefix("1x")) // want `"1x" is not valid identifier prefix`

var G = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.ConstPrefix("A"),
	enumconv.ConstPrefix("B"), // want `duplicate enumconv.ConstPrefix`
)
