//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// readSecretTerminal prompts on errOut and reads one line from the terminal
// with echo disabled, restoring the terminal state afterwards.
func readSecretTerminal(in *os.File, errOut io.Writer, prompt string) ([]byte, error) {
	fd := int(in.Fd())

	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, errNotTerminal
	}

	restore := *termios
	termios.Lflag &^= unix.ECHO
	termios.Lflag |= unix.ICANON | unix.ISIG
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, err
	}

	defer func() {
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, &restore)
		fmt.Fprintln(errOut)
	}()

	fmt.Fprint(errOut, prompt)

	return readLine(in)
}
