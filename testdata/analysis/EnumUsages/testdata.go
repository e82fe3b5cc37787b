//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

var Number = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Zero"))

var alias = Number // want `cannot use enum "Number" as value; replaced by a type at code generation`

var _ = enumconv.Enum(enumconv.Repr("u8")) // want `cannot declare enum as blank identifier`

func useEnum() {
	_ = Number // want `cannot use enum "Number" as value`
}
