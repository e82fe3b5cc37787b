//go:build enumconv

package main

import "github.com/sublee/enumconv"

var Number = enumconv.Enum(enumconv.Repr("u8"), enumconv.Variant("Zero"))
