//go:build enumconv

package main

import (
	"fmt"

	"github.com/sublee/enumconv"
)

const Base = 254

var Level = enumconv.Enum(
	enumconv.Repr("u8"),
	enumconv.Value("High", Base),
	enumconv.Variant("Higher"),
	enumconv.Variant("Highest"),
)

func describe(n uint8) string {
	return fmt.Sprintf("level %d", n)
}
