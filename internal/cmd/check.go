package cmd

import (
	"errors"
	"log/slog"

	"github.com/Alia5/suitegen/internal/codegen/generator"
	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/log"
)

// ErrStale is returned by check when the entry point needs regenerating.
var ErrStale = errors.New("entry point is out of date; run `suitegen generate`")

// Check verifies that the entry point matches the aggregate file without
// writing anything.
type Check struct{}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(l layout.Layout, opts generator.Options, logger *slog.Logger, reporter log.Reporter) error {
	upToDate, status, err := generator.New(l, opts, logger, reporter).Check()
	if err != nil {
		return err
	}
	if status == generator.StatusOK && !upToDate {
		return ErrStale
	}
	return nil
}
