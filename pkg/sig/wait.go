//go:build linux || darwin

package sig

// Wait suspends the calling thread until one of the signals in s is
// pending for it, removes that signal from the pending set, and returns
// it. No asynchronous disposition runs for the consumed signal.
//
// Every member of s must already be blocked on the calling thread (and
// the goroutine pinned with runtime.LockOSThread); otherwise delivery
// races the wait and may invoke the signal's asynchronous disposition
// instead. Wait cannot detect or correct such races.
//
// Wait has no timeout and no cancellation of its own. A waiting thread is
// interrupted out-of-band, by sending it a signal that is not blocked and
// whose disposition terminates or unwinds.
func (s *Set) Wait() (Signal, error) {
	return sigwait(&s.sigset)
}
