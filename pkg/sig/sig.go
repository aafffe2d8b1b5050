//go:build linux || darwin

// Package sig is a thin, safe layer over the operating system's signal
// delivery facilities: signal sets, process-wide dispositions, the
// per-thread blocked-signal mask, synchronous waiting, and process
// signaling.
//
// The thread signal mask is OS thread state. Goroutines that manipulate it
// or call Wait must be pinned to their thread with runtime.LockOSThread
// for as long as they rely on the mask.
//
// Installing a disposition affects every thread in the process and has no
// built-in mutual exclusion; programs that install dispositions from
// multiple goroutines must synchronize externally. The usual pattern is to
// install once during single-threaded startup and restore on exit.
package sig

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Signal identifies a signal by its platform number. Valid signals lie in
// [1, NSIG).
type Signal = syscall.Signal

// NSIG is one past the highest valid signal number. Realtime signals are
// not part of the identifier space.
const NSIG = 32

// Signals available on every supported platform.
const (
	SIGHUP    = unix.SIGHUP
	SIGINT    = unix.SIGINT
	SIGQUIT   = unix.SIGQUIT
	SIGILL    = unix.SIGILL
	SIGTRAP   = unix.SIGTRAP
	SIGABRT   = unix.SIGABRT
	SIGBUS    = unix.SIGBUS
	SIGFPE    = unix.SIGFPE
	SIGKILL   = unix.SIGKILL
	SIGUSR1   = unix.SIGUSR1
	SIGSEGV   = unix.SIGSEGV
	SIGUSR2   = unix.SIGUSR2
	SIGPIPE   = unix.SIGPIPE
	SIGALRM   = unix.SIGALRM
	SIGTERM   = unix.SIGTERM
	SIGCHLD   = unix.SIGCHLD
	SIGCONT   = unix.SIGCONT
	SIGSTOP   = unix.SIGSTOP
	SIGTSTP   = unix.SIGTSTP
	SIGTTIN   = unix.SIGTTIN
	SIGTTOU   = unix.SIGTTOU
	SIGURG    = unix.SIGURG
	SIGXCPU   = unix.SIGXCPU
	SIGXFSZ   = unix.SIGXFSZ
	SIGVTALRM = unix.SIGVTALRM
	SIGPROF   = unix.SIGPROF
	SIGWINCH  = unix.SIGWINCH
	SIGIO     = unix.SIGIO
	SIGSYS    = unix.SIGSYS
)

// Valid reports whether s is in the valid signal range. Operations taking
// a Signal reject values outside it with unix.EINVAL instead of letting
// them wrap into kernel-reserved numbers.
func Valid(s Signal) bool {
	return s >= 1 && s < NSIG
}
