package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// errNotTerminal reports that secret input is not attached to a terminal,
// so no prompt or echo handling applies.
var errNotTerminal = errors.New("not a terminal")

// readSecretInput reads one line of secret material from in. On a terminal
// it prompts on errOut and disables echo while the secret is typed; on a
// pipe or redirect it reads the line as-is.
func readSecretInput(in io.Reader, errOut io.Writer, prompt string) ([]byte, error) {
	if file, ok := in.(*os.File); ok {
		text, err := readSecretTerminal(file, errOut, prompt)
		if !errors.Is(err, errNotTerminal) {
			return text, err
		}
	}

	return readLine(in)
}

func readLine(in io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return []byte(strings.TrimRight(line, "\r\n")), nil
}
