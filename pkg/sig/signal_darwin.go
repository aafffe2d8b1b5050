//go:build darwin

package sig

import "golang.org/x/sys/unix"

// Signals only present on Darwin.
const (
	SIGEMT  = unix.SIGEMT
	SIGINFO = unix.SIGINFO
)
