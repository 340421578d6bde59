package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"syscall"
)

// ErrAggregateMissing is returned by ScanSuiteFile when the aggregate file does not exist.
var ErrAggregateMissing = errors.New("aggregate file does not exist")

// Declaration is a single suite declaration line found in the aggregate file.
type Declaration struct {
	Ident      string `json:"ident"`      // Suite variable name (e.g., "tests")
	Descriptor string `json:"descriptor"` // Raw text between the braces (e.g., ` "Test ts library" `)
	Line       int    `json:"line"`       // 1-based line number in the source
}

// NewSuitePattern builds the declaration pattern for the given marker:
// <marker> <ident> {<any text>}
// The whole declaration must sit on one physical line.
func NewSuitePattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(marker) + `\s+(\w+)\s+\{(.*)\}`)
}

// ScanSuites reads r line by line and returns every matching declaration in
// source order. Duplicate identifiers are kept. Lines have no length limit.
func ScanSuites(r io.Reader, pattern *regexp.Regexp) ([]Declaration, error) {
	var decls []Declaration

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read declarations: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if m := pattern.FindStringSubmatch(line); m != nil {
			decls = append(decls, Declaration{
				Ident:      m[1],
				Descriptor: m[2],
				Line:       lineNo,
			})
		}
		if err != nil {
			break
		}
	}
	return decls, nil
}

// ScanSuiteFile scans the aggregate file at path. A path below a regular file
// counts as missing.
func ScanSuiteFile(path string, pattern *regexp.Regexp) ([]Declaration, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, fmt.Errorf("%w: %s", ErrAggregateMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decls, err := ScanSuites(f, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return decls, nil
}
