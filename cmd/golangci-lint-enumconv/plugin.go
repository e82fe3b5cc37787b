// golangcilintenumconv package provides a plugin for golangci-lint to
// integrate the Enumconv analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-enumconv binary. Run it with
// "--build-tags=enumconv" to lint enum declarations.
package golangcilintenumconv

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/enumconv/pkg/enumconvanalysis"
)

func init() {
	register.Plugin("enumconv", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return EnumconvLinter{}, nil
}

type EnumconvLinter struct{}

func (EnumconvLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumconvanalysis.Analyzer}, nil
}

// GetLoadMode returns the types-info load mode; directives are resolved by
// their callee objects.
func (EnumconvLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
