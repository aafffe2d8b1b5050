//go:build linux || darwin

package sig

import "golang.org/x/sys/unix"

// Kill requests delivery of s to the process identified by pid; per
// kill(2) convention, a negative pid targets a process group and pid 0
// the caller's own group. It returns as soon as the OS has queued the
// request, not once the signal is delivered or handled. It fails if the
// target does not exist (unix.ESRCH) or the caller lacks permission
// (unix.EPERM).
func Kill(pid int, s Signal) error {
	return unix.Kill(pid, s)
}

// Raise requests delivery of s to the calling thread. Directing the
// signal at the thread rather than the process means that if s is blocked
// on the calling thread it stays pending there, where Wait can consume
// it. It fails only on an invalid signal.
func Raise(s Signal) error {
	return raiseSelf(s)
}
