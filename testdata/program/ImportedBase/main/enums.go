//go:build enumconv

package main

import (
	"example.com/ImportedBase/codes"
	"github.com/sublee/enumconv"
)

var Status = enumconv.Enum(
	enumconv.Repr("u16"),
	enumconv.Value("OK", codes.OK),
	enumconv.Variant("Created"),
	enumconv.Value("NotFound", codes.NotFound),
	enumconv.Unknown("Unexpected"),
)
