package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/suitegen/internal/codegen/generator/cpp"
	"github.com/Alia5/suitegen/internal/codegen/meta"
	"github.com/Alia5/suitegen/internal/codegen/scanner"
	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/log"
)

// Status describes how a scan or generate run ended.
type Status int

const (
	// StatusOK means suites were found (and, for Generate, written).
	StatusOK Status = iota
	// StatusNoDir means the test directory does not exist. Nothing is printed.
	StatusNoDir
	// StatusNoAggregate means the aggregate file is missing.
	StatusNoAggregate
	// StatusNoSuites means the aggregate file declares no suites.
	StatusNoSuites
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoDir:
		return "no test directory"
	case StatusNoAggregate:
		return "no aggregate file"
	case StatusNoSuites:
		return "no suites"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options tweak the rendered entry point.
type Options struct {
	Verbosity string
}

type Generator struct {
	layout   layout.Layout
	opts     Options
	logger   *slog.Logger
	reporter log.Reporter
}

func New(l layout.Layout, opts Options, logger *slog.Logger, reporter log.Reporter) *Generator {
	return &Generator{
		layout:   l,
		opts:     opts,
		logger:   logger,
		reporter: reporter,
	}
}

// Scan discovers the suites declared in the aggregate file.
// The registry is nil unless the status is StatusOK or StatusNoSuites.
func (g *Generator) Scan() (*meta.Registry, Status, error) {
	ok, err := g.layout.DirExists()
	if err != nil {
		return nil, StatusNoDir, err
	}
	if !ok {
		g.logger.Debug("Test directory not found, nothing to do", "dir", g.layout.Dir)
		return nil, StatusNoDir, nil
	}

	source := g.layout.AggregatePath()
	g.logger.Debug("Scanning aggregate file", "file", source, "marker", g.layout.Marker)

	decls, err := scanner.ScanSuiteFile(source, scanner.NewSuitePattern(g.layout.Marker))
	if errors.Is(err, scanner.ErrAggregateMissing) {
		g.reporter.Printf("file %s doesn't exist.", source)
		return nil, StatusNoAggregate, nil
	}
	if err != nil {
		return nil, StatusNoAggregate, err
	}

	reg := &meta.Registry{Source: source, Suites: decls}
	if reg.Empty() {
		g.reporter.Printf("No test suites found in %s.", g.layout.Aggregate)
		return reg, StatusNoSuites, nil
	}

	g.logger.Info("Found test suites", "count", len(decls), "file", source)
	return reg, StatusOK, nil
}

// Generate scans the aggregate file and rewrites the entry point. The entry
// point is left untouched unless at least one suite was found.
func (g *Generator) Generate() (Status, error) {
	reg, status, err := g.Scan()
	if err != nil || status != StatusOK {
		return status, err
	}

	if err := cpp.WriteEntryPoint(g.logger, g.layout.EntryPointPath(), g.entryPoint(reg)); err != nil {
		return status, fmt.Errorf("generate entry point: %w", err)
	}
	return StatusOK, nil
}

// Render returns the entry point that Generate would write for reg.
func (g *Generator) Render(reg *meta.Registry) ([]byte, error) {
	var buf bytes.Buffer
	if err := cpp.RenderEntryPoint(&buf, g.entryPoint(reg)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Check reports whether the entry point on disk matches a fresh render.
// It never writes. A missing entry point counts as out of date.
func (g *Generator) Check() (bool, Status, error) {
	reg, status, err := g.Scan()
	if err != nil || status != StatusOK {
		return false, status, err
	}

	want, err := g.Render(reg)
	if err != nil {
		return false, status, err
	}

	path := g.layout.EntryPointPath()
	have, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		g.reporter.Printf("%s is out of date.", path)
		return false, status, nil
	}
	if err != nil {
		return false, status, fmt.Errorf("read entry point: %w", err)
	}

	if !bytes.Equal(have, want) {
		g.reporter.Printf("%s is out of date.", path)
		return false, status, nil
	}
	g.reporter.Printf("%s is up to date.", path)
	return true, status, nil
}

func (g *Generator) entryPoint(reg *meta.Registry) cpp.EntryPoint {
	return cpp.EntryPoint{
		TesterHeader: g.layout.HarnessHeader("tester.hpp"),
		Aggregate:    filepath.ToSlash(g.layout.Aggregate),
		Verbosity:    g.opts.Verbosity,
		Suites:       reg.Idents(),
	}
}
