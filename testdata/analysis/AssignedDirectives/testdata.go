//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

var Number = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Zero")) // ok

var (
	repr    = enumconv.Repr("u8")      // want `cannot use enumconv.Repr outside enumconv.Enum`
	variant = enumconv.Variant("Zero") // want `cannot use enumconv.Variant outside enumconv.Enum`
	prefix  = enumconv.ConstPrefix("") // want `cannot use enumconv.ConstPrefix outside enumconv.Enum`
)

func insideFunc() {
	local := enumconv.Enum(enumconv.Repr("u8")) // want `enumconv.Enum must be assigned to a package-level variable`
	_ = local

	enumconv.Variant("Dangling") // want `cannot use enumconv.Variant outside enumconv.Enum`
}
