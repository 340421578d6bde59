package cmd

import (
	"log/slog"

	"github.com/Alia5/suitegen/internal/layout"
	"github.com/Alia5/suitegen/internal/stub"
)

// New creates an empty suite declaration file.
type New struct {
	Name    string `arg:"" name:"name" help:"Name of the test suite"`
	Comment string `short:"c" help:"Optional comment for the test suite"`
	Force   bool   `help:"Overwrite an existing stub without asking"`
}

// Run is called by Kong when the new command is executed.
func (n *New) Run(l layout.Layout, confirm stub.Confirmer, logger *slog.Logger) error {
	if n.Force {
		confirm = stub.Always(stub.Yes)
	}

	res, path, err := stub.New(l, confirm, logger).Create(n.Name, n.Comment)
	if err != nil {
		return err
	}
	logger.Debug("Stub creation finished", "suite", n.Name, "file", path, "result", res)
	return nil
}
