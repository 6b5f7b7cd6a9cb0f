package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "newline", input: "secret\n", expected: "secret"},
		{name: "crlf", input: "secret\r\n", expected: "secret"},
		{name: "no trailing newline", input: "secret", expected: "secret"},
		{name: "empty", input: "", expected: ""},
		{name: "only first line", input: "first\nsecond\n", expected: "first"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			line, err := readLine(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(line))
		})
	}
}

func TestReadLineError(t *testing.T) {
	_, err := readLine(iotest.ErrReader(errors.New("broken pipe")))
	assert.Error(t, err)
}

func TestReadSecretInput(t *testing.T) {
	var errOut bytes.Buffer

	line, err := readSecretInput(strings.NewReader("hunter2\n"), &errOut, "Secret: ")
	require.NoError(t, err)

	assert.Equal(t, "hunter2", string(line))
	assert.Empty(t, errOut.String())
}

func TestReadSecretInputFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)

	defer file.Close()

	_, err = file.WriteString("hunter2\n")
	require.NoError(t, err)

	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)

	var errOut bytes.Buffer

	line, err := readSecretInput(file, &errOut, "Secret: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(line))
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("one\n\n  two  \n\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestReadLinesEmpty(t *testing.T) {
	lines, err := readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
