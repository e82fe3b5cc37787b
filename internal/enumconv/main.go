package enumconvinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumconv/internal/enumconv/parse"
)

var Version string

var log = commonlog.GetLogger("enumconv")

// Main is the main entry point for Enumconv. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		ec, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := ec.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := ec.Generate()
		if len(code) == 0 {
			log.Debugf("no enums in %s", pkg.PkgPath)
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
		log.Infof("generated %d enums in %s", len(ec.enums), out)
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		tagged := taggedFiles(pkg)
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if err.Kind == packages.TypeError && !tagged[filepath.Clean(path)] {
				// Files without the build tag may use the generated types,
				// which are excluded by the build tag. The enum files are still
				// type-checked, so the error is not fatal.
				log.Debugf("ignored type error: %s", err)
				continue
			}

			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// taggedFiles returns the paths of files having the enumconv build tag.
func taggedFiles(pkg *packages.Package) map[string]bool {
	tagged := make(map[string]bool)
	for _, file := range pkg.Syntax {
		if parse.HasBuildTag(file) {
			tagged[filepath.Clean(pkg.Fset.File(file.Pos()).Name())] = true
		}
	}
	return tagged
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)
			list[i] = nil
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
