// Command scan-suites dumps the suite declarations found in an aggregate file
// as JSON, including descriptors and line numbers. Useful when a suite does
// not show up in the generated entry point.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Alia5/suitegen/internal/codegen/scanner"
	"github.com/Alia5/suitegen/internal/layout"
)

func main() {
	l := layout.Default()
	path := l.AggregatePath()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	marker := l.Marker
	if len(os.Args) > 2 {
		marker = os.Args[2]
	}

	decls, err := scanner.ScanSuiteFile(path, scanner.NewSuitePattern(marker))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan suites: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(decls, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
