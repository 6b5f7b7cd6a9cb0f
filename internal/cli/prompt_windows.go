//go:build windows
// +build windows

package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// readSecretTerminal prompts on errOut and reads one line from the console
// with echo disabled, restoring the console mode afterwards.
func readSecretTerminal(in *os.File, errOut io.Writer, prompt string) ([]byte, error) {
	handle := windows.Handle(in.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, errNotTerminal
	}

	restore := mode
	mode &^= windows.ENABLE_ECHO_INPUT
	mode |= windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT
	if err := windows.SetConsoleMode(handle, mode); err != nil {
		return nil, err
	}

	defer func() {
		_ = windows.SetConsoleMode(handle, restore)
		fmt.Fprintln(errOut)
	}()

	fmt.Fprint(errOut, prompt)

	return readLine(in)
}
