//go:build enumconv

package main

import "github.com/sublee/enumconv"

// Number is a small number.
var Number = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Variant("Zero"),
	enumconv.Variant("One"),
	enumconv.Value("Ten", 10),
	enumconv.Variant("Eleven"),
	enumconv.Unknown("Other"),
)
