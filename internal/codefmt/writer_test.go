package codefmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterImportWithoutPkg(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)

	assert.Equal(t, "fmt", w.Import("fmt", "fmt"))
	assert.Equal(t, "fmt", w.Import("fmt", "fmt"))
	assert.Equal(t, "fmt2", w.Import("example.com/fmt", "fmt"))

	imports := w.Imports()
	assert.Len(t, imports, 2)
	assert.False(t, imports["fmt"].HasAlias)
	assert.Equal(t, "example.com/fmt", imports["fmt2"].Path())

	w.Printf("%s.Println(%d)", "fmt", 42)
	assert.Equal(t, "fmt.Println(42)", buf.String())
}
