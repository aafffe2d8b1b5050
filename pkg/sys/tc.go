//go:build unix

package sys

import (
	"golang.org/x/sys/unix"
)

// Tcgetpgrp returns the ID of the foreground process group of the
// terminal referenced by fd.
func Tcgetpgrp(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCGPGRP)
}

// Tcsetpgrp makes the process group identified by pid the foreground
// process group of the terminal referenced by fd. Calling it from a
// process that is not in the foreground group raises SIGTTOU, so callers
// reclaiming the terminal must have SIGTTOU ignored or blocked.
func Tcsetpgrp(fd int, pid int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pid)
}
