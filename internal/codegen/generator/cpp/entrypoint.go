package cpp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/template"
)

const entryPointTemplate = `#include <windows.h>

#include "{{.TesterHeader}}"
#include "{{.Aggregate}}"


int main()
{

	SetConsoleOutputCP(CP_UTF8);
	ts::Tester tester;
{{- if .Verbosity}}
	tester.set_verbosity(ts::VERBOSITY::{{.Verbosity}});
{{- end}}
{{- range .Suites}}
	tester.add({{.}}, "{{.}}");
{{- end}}
	tester.run();
	return 0;

}
`

var entryPointTmpl = template.Must(template.New("entrypoint").Parse(entryPointTemplate))

// Verbosity levels understood by ts::Tester::set_verbosity.
var verbosityLevels = []string{"mute", "normal", "verbose"}

// EntryPoint is the data rendered into the generated test program.
type EntryPoint struct {
	TesterHeader string   // Include path of tester.hpp (e.g., "../lib/ts/tester.hpp")
	Aggregate    string   // Include path of the aggregate declarations file
	Verbosity    string   // Optional ts::VERBOSITY value; empty keeps the harness default
	Suites       []string // Suite identifiers in registration order
}

// ValidVerbosity reports whether v can be passed to set_verbosity. Empty is valid.
func ValidVerbosity(v string) bool {
	if v == "" {
		return true
	}
	for _, l := range verbosityLevels {
		if v == l {
			return true
		}
	}
	return false
}

// RenderEntryPoint writes the entry point program to w.
func RenderEntryPoint(w io.Writer, data EntryPoint) error {
	if !ValidVerbosity(data.Verbosity) {
		return fmt.Errorf("invalid verbosity %q (expected one of %v)", data.Verbosity, verbosityLevels)
	}
	if err := entryPointTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute entrypoint template: %w", err)
	}
	return nil
}

// WriteEntryPoint renders the entry point into outputFile, replacing whatever
// was there before.
func WriteEntryPoint(logger *slog.Logger, outputFile string, data EntryPoint) error {
	logger.Debug("Generating entry point", "file", outputFile)
	if !ValidVerbosity(data.Verbosity) {
		return fmt.Errorf("invalid verbosity %q (expected one of %v)", data.Verbosity, verbosityLevels)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputFile, err)
	}
	defer f.Close()

	if err := RenderEntryPoint(f, data); err != nil {
		return err
	}

	logger.Info("Generated entry point", "file", outputFile, "suites", len(data.Suites))
	return nil
}
