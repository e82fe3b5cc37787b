//go:build enumconv

package main

import "github.com/sublee/enumconv"

var Number = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Value("Max", 255),
	enumconv.Variant("Overflow"),
)

var Empty = enumconv.Enum(enumconv.Variant("Zero"))
