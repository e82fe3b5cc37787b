package main

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/sublee/enumconv/internal/codefmt"
	"github.com/sublee/enumconv/internal/enumdef"
	"github.com/sublee/enumconv/internal/schema"
	"github.com/sublee/enumconv/internal/synth"
	"github.com/sublee/enumconv/internal/table"
)

// describe prints the realized discriminants of the enums in the .enum files.
// Symbolic bases are evaluated against env.
func describe(w io.Writer, files []string, env map[string]int64) error {
	fset := token.NewFileSet()
	f := codefmt.Formatter{Fset: fset}

	var errs error
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		decls, err := enumdef.Parse(fset, file, src)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, decl := range decls {
			s, err := schema.Build(decl)
			if err != nil {
				errs = errors.Join(errs, f.Wrap(codefmt.Pos(schema.ErrorPos(err, decl.Pos)), err))
				continue
			}

			rows, err := table.Describe(synth.Synthesize(s, nil), table.Env(env))
			if err != nil {
				errs = errors.Join(errs, f.Wrap(codefmt.Pos(decl.Pos), err))
				continue
			}

			fmt.Fprintf(w, "%s (%s)\n", pterm.Bold.Sprint(s.Name), s.Repr)
			data := pterm.TableData{{"Variant", "Discriminant", "Expression"}}
			data = append(data, rows...)
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)
		}
	}
	return errs
}
