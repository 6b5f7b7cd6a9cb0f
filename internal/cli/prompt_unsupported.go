//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris,!windows

package cli

import (
	"io"
	"os"
)

func readSecretTerminal(_ *os.File, _ io.Writer, _ string) ([]byte, error) {
	return nil, errNotTerminal
}
