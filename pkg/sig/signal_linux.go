//go:build linux

package sig

import "golang.org/x/sys/unix"

// Signals only present on Linux.
const (
	SIGPWR    = unix.SIGPWR
	SIGSTKFLT = unix.SIGSTKFLT

	// Historical aliases.
	SIGIOT    = SIGABRT
	SIGPOLL   = SIGIO
	SIGUNUSED = SIGSYS
)
