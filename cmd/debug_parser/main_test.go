package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-gadget/internal/parser"
)

func TestTrace(t *testing.T) {
	input := strings.Join([]string{
		`"a","b"`,
		`"1","x"`,
		``,
		`"Total Elapsed Time (sec) = 2.0"`,
	}, "\r\n")

	var out bytes.Buffer
	require.NoError(t, trace(strings.NewReader(input), &out))

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "1  Header   Quoted")
	assert.Equal(t, "       -> Table", lines[1])
	assert.Contains(t, lines[2], "2  Table    Quoted       2")
	assert.Contains(t, lines[3], "3  Table    Unknown      -")
	assert.Equal(t, "       -> Summary", lines[4])
	assert.Contains(t, lines[5], "4  Summary  Quoted       1")

	assert.Contains(t, out.String(), "Rows:         1\n")
	assert.Contains(t, out.String(), "Summary keys: 1\n")
	assert.Contains(t, out.String(), "Transitions:  2\n")
}

func TestTraceStopsAtFirstError(t *testing.T) {
	input := "a,b\n1,2\n1,2,3\n4,5\n"

	var out bytes.Buffer
	err := trace(strings.NewReader(input), &out)

	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.ErrorIs(t, err, parser.ErrColumnMismatch)
	assert.NotContains(t, out.String(), "    4  ")
}
