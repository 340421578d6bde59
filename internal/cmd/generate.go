package cmd

import (
	"log/slog"

	"github.com/Alia5/suitegen/internal/codegen/generator"
	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/log"
)

// Generate rebuilds the test entry point from the suites declared in the
// aggregate file. It takes no arguments.
type Generate struct{}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(l layout.Layout, opts generator.Options, logger *slog.Logger, reporter log.Reporter) error {
	logger.Debug("Starting entry point generation", "dir", l.Dir, "aggregate", l.Aggregate, "output", l.EntryPoint)

	status, err := generator.New(l, opts, logger, reporter).Generate()
	if err != nil {
		return err
	}
	logger.Debug("Entry point generation finished", "status", status)
	return nil
}
