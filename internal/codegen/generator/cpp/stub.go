package cpp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/template"
)

// The stub intentionally ends without a trailing newline.
const stubTemplate = `#pragma once
#include "{{.SuiteHeader}}"


{{.Marker}} {{.Name}} {{if .Comment}}{ "{{.Comment}}" }{{else}}{}{{end}};`

var stubTmpl = template.Must(template.New("stub").Parse(stubTemplate))

// Stub is the data rendered into a new suite declaration file.
type Stub struct {
	SuiteHeader string // Include path of suite.hpp
	Marker      string // Declaration token (e.g., "ts::Suite")
	Name        string // Suite identifier
	Comment     string // Optional descriptor text
}

// RenderStub writes the stub declaration to w.
func RenderStub(w io.Writer, data Stub) error {
	if err := stubTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute stub template: %w", err)
	}
	return nil
}

// WriteStub creates or truncates outputFile and renders the stub into it.
func WriteStub(logger *slog.Logger, outputFile string, data Stub) error {
	logger.Debug("Generating suite stub", "file", outputFile, "suite", data.Name)

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputFile, err)
	}
	defer f.Close()

	if err := RenderStub(f, data); err != nil {
		return err
	}

	logger.Info("Generated suite stub", "file", outputFile, "suite", data.Name)
	return nil
}
