//go:build enumconv

package testdata

import "github.com/sublee/enumconv"

const NumberZero = 0

var Number = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Zero")) // want `cannot generate Number; NumberZero is already declared at .*`

var Color = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Red"), enumconv.ConstPrefix(""))

var Light = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Red"), enumconv.ConstPrefix("")) // want `cannot generate Light; Red is also generated for Color at .*`
