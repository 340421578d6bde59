package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Reporter prints the plain messages a command shows its user, such as a
// missing input file or an empty scan result. These are not log records: they
// carry no level or timestamp and are printed regardless of the log level.
type Reporter interface {
	Printf(format string, args ...any)
}

type reporter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewReporter creates a Reporter writing one line per message to w.
// If w is nil, the reporter discards everything.
func NewReporter(w io.Writer) Reporter {
	return &reporter{w: w}
}

func (r *reporter) Printf(format string, args ...any) {
	if r.w == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
