package main

import (
	"context"
	"flag"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/sys/unix"

	enumconvinternal "github.com/sublee/enumconv/internal/enumconv"
)

var Version = "dev"

var (
	bFlag        = flag.String("b", "", "comma-separated build tags")
	tFlag        = flag.Bool("t", false, "include tests")
	oFlag        = flag.String("o", "enumconv_gen.go", "output file name")
	cFlag        = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag        = flag.Int("v", 0, "log verbosity")
	configFlag   = flag.String("config", "", "TOML config file")
	describeFlag = flag.Bool("describe", false, "print discriminants of .enum files instead of generating")
	pkgFlag      = flag.String("pkg", "", "package name of code generated from .enum files")
)

func init() {
	enumconvinternal.Version = Version
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fail(err)
	}
	cfg.applyFlags()

	commonlog.Configure(cfg.Verbosity, nil)

	switch cfg.Color {
	case "auto":
		color.NoColor = !isatty()
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fail(fmt.Errorf("invalid -c value: %s", cfg.Color))
	}

	wd, err := os.Getwd()
	if err != nil {
		fail(err)
	}

	args := flag.Args()
	if *describeFlag {
		if err := describe(os.Stdout, args, cfg.Env); err != nil {
			fail(err)
		}
		return
	}

	if len(args) != 0 && allEnumFiles(args) {
		if err := generateEnumFiles(wd, args, cfg.Package); err != nil {
			fail(err)
		}
		return
	}

	outs, err := enumconvinternal.Main(context.Background(), wd, os.Environ(), cfg.Tags, cfg.Tests, cfg.Output, args)
	if err != nil {
		fail(err)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fail(err)
		}
		generated(wd, out)
	}
}

func allEnumFiles(args []string) bool {
	for _, arg := range args {
		if filepath.Ext(arg) != ".enum" {
			return false
		}
	}
	return true
}

// generateEnumFiles generates "<name>_enum.go" next to each "<name>.enum" file.
func generateEnumFiles(wd string, files []string, pkgName string) error {
	fset := token.NewFileSet()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		name := pkgName
		if name == "" {
			name = filepath.Base(filepath.Dir(filepath.Join(wd, file)))
		}

		code, err := enumconvinternal.GenerateEnumFile(fset, name, file, src)
		if err != nil {
			return err
		}
		if code == nil {
			continue
		}

		out := strings.TrimSuffix(file, ".enum") + "_enum.go"
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}
		generated(wd, out)
	}
	return nil
}

func generated(wd, out string) {
	if relOut, err := filepath.Rel(wd, out); err == nil {
		out = relOut
	}
	fmt.Println("Generated:", out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, colorize(err.Error()))
	os.Exit(1)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var reDiag = regexp.MustCompile(`(?m)^(\S+:\d+:\d+:) (.+)$`)

// colorize highlights positions and messages of diagnostics.
func colorize(message string) string {
	pos := color.New(color.Faint).SprintFunc()
	msg := color.New(color.FgRed).SprintFunc()
	return reDiag.ReplaceAllStringFunc(message, func(line string) string {
		m := reDiag.FindStringSubmatch(line)
		return pos(m[1]) + " " + msg(m[2])
	})
}
