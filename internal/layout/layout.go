// Package layout describes where suitegen looks for test sources and where it
// writes generated files. Every command receives a Layout value instead of
// reading a package-level path, so tests can point it at a temporary directory.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Layout is the designated test-source directory plus the fixed file names
// beneath it.
type Layout struct {
	Dir            string `help:"Designated test-source directory" default:"./test/src" env:"SUITEGEN_DIR"`
	Aggregate      string `help:"Aggregate file holding the suite declarations (relative to dir)" default:"_tests.hpp" env:"SUITEGEN_AGGREGATE"`
	EntryPoint     string `help:"Generated entry point file (relative to dir)" name:"entry-point" default:"test.cpp" env:"SUITEGEN_ENTRY_POINT"`
	StubSuffix     string `help:"Suffix appended to the suite name for new stub files" default:".test.hpp" env:"SUITEGEN_STUB_SUFFIX"`
	Marker         string `help:"Token that starts a suite declaration" default:"ts::Suite" env:"SUITEGEN_MARKER"`
	HarnessInclude string `help:"Include path of the harness headers as seen from dir" name:"harness-include" default:"../lib/ts" env:"SUITEGEN_HARNESS_INCLUDE"`
}

// Default returns the layout used when nothing is configured.
func Default() Layout {
	return Layout{
		Dir:            filepath.Join(".", "test", "src"),
		Aggregate:      "_tests.hpp",
		EntryPoint:     "test.cpp",
		StubSuffix:     ".test.hpp",
		Marker:         "ts::Suite",
		HarnessInclude: "../lib/ts",
	}
}

// DirExists reports whether anything is present at the designated directory
// path. A missing path is not an error: it means no test sources are set up
// yet. A regular file in its place counts as present, so later reads under it
// fail on their own.
func (l Layout) DirExists() (bool, error) {
	_, err := os.Stat(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat test directory %s: %w", l.Dir, err)
	}
	return true, nil
}

func (l Layout) AggregatePath() string {
	return filepath.Join(l.Dir, l.Aggregate)
}

func (l Layout) EntryPointPath() string {
	return filepath.Join(l.Dir, l.EntryPoint)
}

// StubPath returns the stub file for the named suite. The name is used as-is;
// separators or reserved characters in it are not rejected.
func (l Layout) StubPath(name string) string {
	return filepath.Join(l.Dir, name+l.StubSuffix)
}

// HarnessHeader joins the harness include path with a header name using
// forward slashes, as expected inside an #include directive.
func (l Layout) HarnessHeader(header string) string {
	if l.HarnessInclude == "" {
		return header
	}
	return filepath.ToSlash(filepath.Join(filepath.FromSlash(l.HarnessInclude), header))
}
