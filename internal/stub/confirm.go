package stub

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Answer is the resolution of an overwrite conflict.
type Answer int

const (
	No Answer = iota
	Yes
)

func (a Answer) String() string {
	if a == Yes {
		return "yes"
	}
	return "no"
}

// Confirmer decides whether an existing stub file may be overwritten.
type Confirmer interface {
	Confirm(path string) (Answer, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(path string) (Answer, error)

func (f ConfirmFunc) Confirm(path string) (Answer, error) {
	return f(path)
}

// Always answers every prompt with the same decision (used for --force).
type Always Answer

func (a Always) Confirm(string) (Answer, error) {
	return Answer(a), nil
}

// parseAnswer accepts y/Y/n/N and nothing else. Only the line terminator is
// stripped, so " y" is not an answer.
func parseAnswer(s string) (Answer, bool) {
	switch strings.TrimRight(s, "\r\n") {
	case "y", "Y":
		return Yes, true
	case "n", "N":
		return No, true
	default:
		return No, false
	}
}

// LineConfirmer asks on Out and reads answers line by line from In until it
// gets y or n. Any other response repeats the question. Running out of input
// counts as "no".
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
	// EchoNewline terminates the prompt line after each answer; set it when In
	// is not a terminal, since the answer is not echoed then.
	EchoNewline bool

	r *bufio.Reader
}

// NewConsoleConfirmer binds a LineConfirmer to the process's stdin and stdout.
func NewConsoleConfirmer() *LineConfirmer {
	return &LineConfirmer{
		In:          os.Stdin,
		Out:         os.Stdout,
		EchoNewline: !term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (c *LineConfirmer) Confirm(path string) (Answer, error) {
	if c.r == nil {
		c.r = bufio.NewReader(c.In)
	}
	for {
		if _, err := fmt.Fprintf(c.Out, "File %s exists. Overwrite? [Y]es [N]o ", path); err != nil {
			return No, err
		}

		line, err := c.r.ReadString('\n')
		if c.EchoNewline {
			_, _ = fmt.Fprintln(c.Out)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return No, fmt.Errorf("read answer: %w", err)
		}

		if answer, ok := parseAnswer(line); ok {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			return No, nil
		}
	}
}

// Scripted replays a fixed list of raw responses, re-asking on anything that
// is not y or n. It answers "no" once the script is exhausted.
type Scripted struct {
	Responses []string
	Asked     int
}

func (s *Scripted) Confirm(string) (Answer, error) {
	for s.Asked < len(s.Responses) {
		resp := s.Responses[s.Asked]
		s.Asked++
		if answer, ok := parseAnswer(resp); ok {
			return answer, nil
		}
	}
	return No, nil
}
