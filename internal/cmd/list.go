package cmd

import (
	"log/slog"
	"strings"

	"github.com/Alia5/suitegen/internal/codegen/generator"
	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/log"
)

// List prints the suites the generate command would register, in order.
type List struct{}

// Run is called by Kong when the list command is executed.
func (c *List) Run(l layout.Layout, opts generator.Options, logger *slog.Logger, reporter log.Reporter) error {
	reg, status, err := generator.New(l, opts, logger, reporter).Scan()
	if err != nil || status != generator.StatusOK {
		return err
	}

	for _, s := range reg.Suites {
		desc := strings.TrimSpace(s.Descriptor)
		if desc == "" {
			reporter.Printf("%s", s.Ident)
			continue
		}
		reporter.Printf("%s %s", s.Ident, desc)
	}
	return nil
}
