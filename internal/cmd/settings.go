package cmd

import (
	"github.com/Alia5/suitegen/internal/codegen/generator"
	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/log"
)

// Settings are the global flags every command shares. They can also be set
// from a config file (see `suitegen config init`).
type Settings struct {
	Log       log.Options   `embed:"" prefix:"log."`
	Layout    layout.Layout `embed:""`
	Verbosity string        `help:"Verbosity passed to ts::Tester::set_verbosity in the entry point (mute, normal, verbose); empty keeps the harness default" env:"SUITEGEN_VERBOSITY"`
}

// GeneratorOptions returns the entry point rendering options.
func (s Settings) GeneratorOptions() generator.Options {
	return generator.Options{Verbosity: s.Verbosity}
}
