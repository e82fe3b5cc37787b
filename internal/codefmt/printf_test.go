package codefmt

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintfVerbs(t *testing.T) {
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "x.go", "Base+10", 0)
	require.NoError(t, err)

	f := Formatter{Fset: fset}
	assert.Equal(t, "Base + 10 at x.go:1:1", f.Sprintf("%c at %b", expr, expr.Pos()))
	assert.Equal(t, `"Base" 1`, f.Sprintf("%q %d", "Base", 1))
	assert.Equal(t, "[%c cannot format token.Pos]", f.Sprintf("%c", expr.Pos()))
}
