package testdata

import _ "github.com/sublee/enumconv" // want `file must have "//go:build enumconv" constraint when importing enumconv`
