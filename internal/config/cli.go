// Package config defines the suitegen command line grammar.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/suitegen/internal/cmd"
)

// CLI is the root kong model. Global settings are embedded so they can be
// given as flags, environment variables or config file entries.
type CLI struct {
	cmd.Settings `embed:""`

	Config  string           `help:"Config file to load (json, yaml or toml)" env:"SUITEGEN_CONFIG" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version information and exit"`

	Generate  cmd.Generate      `cmd:"" help:"Generate the test entry point from the suites declared in the aggregate file"`
	New       cmd.New           `cmd:"" help:"Create a new test suite stub"`
	List      cmd.List          `cmd:"" help:"List the suites declared in the aggregate file"`
	Check     cmd.Check         `cmd:"" help:"Check whether the test entry point is up to date"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
