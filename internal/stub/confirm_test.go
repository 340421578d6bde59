package stub

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConfirmer(t *testing.T) {
	const prompt = "File x.test.hpp exists. Overwrite? [Y]es [N]o "

	tests := []struct {
		name     string
		input    string
		echo     bool
		expected Answer
		output   string
	}{
		{
			name:     "yes",
			input:    "y\n",
			expected: Yes,
			output:   prompt,
		},
		{
			name:     "no",
			input:    "N\n",
			expected: No,
			output:   prompt,
		},
		{
			name:     "reprompt until recognized",
			input:    "\nyes\nY\n",
			expected: Yes,
			output:   prompt + prompt + prompt,
		},
		{
			name:     "crlf input",
			input:    "y\r\n",
			expected: Yes,
			output:   prompt,
		},
		{
			name:     "surrounding blanks are not an answer",
			input:    " y \nn \n\ty\nn\n",
			expected: No,
			output:   prompt + prompt + prompt + prompt,
		},
		{
			name:     "last answer without newline",
			input:    "q\ny",
			expected: Yes,
			output:   prompt + prompt,
		},
		{
			name:     "end of input declines",
			input:    "q\n",
			expected: No,
			output:   prompt + prompt,
		},
		{
			name:     "echo newline for piped input",
			input:    "x\nn\n",
			echo:     true,
			expected: No,
			output:   prompt + "\n" + prompt + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &LineConfirmer{In: strings.NewReader(tt.input), Out: &out, EchoNewline: tt.echo}

			answer, err := c.Confirm("x.test.hpp")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
			assert.Equal(t, tt.output, out.String())
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLineConfirmerReadError(t *testing.T) {
	boom := errors.New("broken pipe")
	c := &LineConfirmer{In: failingReader{err: boom}, Out: &bytes.Buffer{}}

	_, err := c.Confirm("x")
	assert.ErrorIs(t, err, boom)
}

func TestScripted(t *testing.T) {
	s := &Scripted{Responses: []string{"?", "n", "y"}}

	answer, err := s.Confirm("a")
	require.NoError(t, err)
	assert.Equal(t, No, answer)
	assert.Equal(t, 2, s.Asked)

	answer, err = s.Confirm("a")
	require.NoError(t, err)
	assert.Equal(t, Yes, answer)
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input    string
		expected Answer
		ok       bool
	}{
		{input: "y", expected: Yes, ok: true},
		{input: "Y\n", expected: Yes, ok: true},
		{input: "n\r\n", expected: No, ok: true},
		{input: "N", expected: No, ok: true},
		{input: " y ", expected: No, ok: false},
		{input: "n ", expected: No, ok: false},
		{input: "\ty\n", expected: No, ok: false},
		{input: "yes", expected: No, ok: false},
		{input: "", expected: No, ok: false},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			answer, ok := parseAnswer(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, answer)
		})
	}
}
