package table

import (
	"fmt"

	"github.com/sublee/enumconv/internal/synth"
)

// Describe realizes the conversions in the Go integer type of their
// representation and returns one row of variant, discriminant and source
// expression per variant. The unknown variant is listed last with "*".
func Describe(c *synth.Conversions, env Env) ([][]string, error) {
	goType, ok := c.Schema.Repr.GoType()
	if !ok {
		return nil, fmt.Errorf("representation %s has no Go integer type", c.Schema.Repr)
	}

	switch goType {
	case "int8":
		return describe[int8](c, env)
	case "int16":
		return describe[int16](c, env)
	case "int32":
		return describe[int32](c, env)
	case "int64":
		return describe[int64](c, env)
	case "int":
		return describe[int](c, env)
	case "uint8":
		return describe[uint8](c, env)
	case "uint16":
		return describe[uint16](c, env)
	case "uint32":
		return describe[uint32](c, env)
	case "uint64":
		return describe[uint64](c, env)
	case "uint":
		return describe[uint](c, env)
	}
	panic("unreachable")
}

func describe[T Integer](c *synth.Conversions, env Env) ([][]string, error) {
	t, err := New[T](c, env)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, e := range t.entries {
		v, _ := c.Schema.Lookup(e.Name)
		expr := v.Disc.String()
		if first := t.names[e.Disc]; first != e.Name {
			expr += " (shadowed by " + first + ")"
		}
		rows = append(rows, []string{e.Name, fmt.Sprint(e.Disc), expr})
	}
	if u := c.Schema.Unknown; u != nil {
		rows = append(rows, []string{u.Name, "*", ""})
	}
	return rows, nil
}
