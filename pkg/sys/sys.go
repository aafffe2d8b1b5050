// Package sys provides the terminal utilities the shell needs: terminal
// detection, window size, and the terminal's foreground process group.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file.
func WinSize(file *os.File) (row, col int) {
	return winSize(file)
}
