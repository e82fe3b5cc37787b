// Package enumconvanalysis reports invalid enumconv directives as analysis
// diagnostics. Packages are analyzed as code generation would see them, so
// the "enumconv" build tag must be set for the driver.
package enumconvanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumconv/internal/codefmt"
	enumconvinternal "github.com/sublee/enumconv/internal/enumconv"
)

// Analyzer validates the usage of Enumconv in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumconv",
	Doc:  "linter for enumconv usage",
	Run:  run,

	// Files without the build tag may refer to the generated types.
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	ec, err := enumconvinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := ec.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
				continue
			}

			// Errors without position are reported at the package clause.
			if len(pass.Files) != 0 {
				pass.Reportf(pass.Files[0].Package, "%s", err)
			}
		}
	}

	return nil, nil
}
