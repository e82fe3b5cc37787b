//go:build enumconv

package main

import "github.com/sublee/enumconv"

var Sign = enumconv.Enum(
	enumconv.Repr("i8"),
	enumconv.Value("Minus", -1),
	enumconv.Variant("Zero"),
	enumconv.Variant("Plus"),
	enumconv.ConstPrefix(""),
)
