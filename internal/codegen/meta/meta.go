package meta

import "github.com/Alia5/suitegen/internal/codegen/scanner"

// Registry holds the suites found in one scan of the aggregate file.
// It lives only for the duration of a single generate run.
type Registry struct {
	Source string                // Path of the scanned aggregate file
	Suites []scanner.Declaration // In discovery order, duplicates included
}

// Idents returns the suite identifiers in discovery order.
func (r *Registry) Idents() []string {
	out := make([]string, 0, len(r.Suites))
	for _, s := range r.Suites {
		out = append(out, s.Ident)
	}
	return out
}

func (r *Registry) Empty() bool {
	return len(r.Suites) == 0
}
