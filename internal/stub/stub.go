// Package stub creates new suite declaration files in the test directory.
package stub

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Alia5/suitegen/internal/codegen/generator/cpp"
	"github.com/Alia5/suitegen/internal/layout"
)

// Result tells the caller what Create did.
type Result int

const (
	// Created means the stub file was written.
	Created Result = iota
	// Declined means the file existed and the overwrite was refused.
	Declined
	// NoDir means the test directory does not exist.
	NoDir
	// Failed means an error was returned.
	Failed
)

func (r Result) String() string {
	switch r {
	case Created:
		return "created"
	case Declined:
		return "declined"
	case NoDir:
		return "no test directory"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

type Creator struct {
	layout  layout.Layout
	confirm Confirmer
	logger  *slog.Logger
}

func New(l layout.Layout, confirm Confirmer, logger *slog.Logger) *Creator {
	return &Creator{
		layout:  l,
		confirm: confirm,
		logger:  logger,
	}
}

// Create writes <name><suffix> into the test directory. An existing file is
// only replaced after the Confirmer agrees. The name is not validated, and the
// aggregate file is not updated.
func (c *Creator) Create(name, comment string) (Result, string, error) {
	ok, err := c.layout.DirExists()
	if err != nil {
		return Failed, "", err
	}
	if !ok {
		c.logger.Debug("Test directory not found, nothing to do", "dir", c.layout.Dir)
		return NoDir, "", nil
	}

	path := c.layout.StubPath(name)
	_, err = os.Stat(path)
	switch {
	case err == nil:
		answer, err := c.confirm.Confirm(path)
		if err != nil {
			return Failed, path, fmt.Errorf("confirm overwrite of %s: %w", path, err)
		}
		if answer != Yes {
			c.logger.Debug("Overwrite declined", "file", path)
			return Declined, path, nil
		}
	case errors.Is(err, fs.ErrNotExist):
		// new stub
	default:
		return Failed, path, fmt.Errorf("stat %s: %w", path, err)
	}

	data := cpp.Stub{
		SuiteHeader: c.layout.HarnessHeader("suite.hpp"),
		Marker:      c.layout.Marker,
		Name:        name,
		Comment:     comment,
	}
	if err := cpp.WriteStub(c.logger, path, data); err != nil {
		return Failed, path, err
	}
	return Created, path, nil
}
