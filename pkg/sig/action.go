//go:build linux || darwin

package sig

import "golang.org/x/sys/unix"

// Handler selects the action taken when a signal is delivered. The set of
// variants is closed: the default action, ignoring the signal, a plain
// handler function, or a siginfo handler that also receives delivery
// context.
type Handler struct {
	kind handlerKind
	pc   uintptr
}

type handlerKind int

const (
	handlerDefault handlerKind = iota
	handlerIgnore
	handlerFunc
	handlerInfoFunc
)

// Default restores the signal's default action.
var Default = Handler{kind: handlerDefault}

// Ignore discards the signal on delivery.
var Ignore = Handler{kind: handlerIgnore}

// Func returns a Handler invoking the function at pc with the signal
// number as its only argument. The function must follow the platform's C
// calling convention, be async-signal-safe, and remain valid for as long
// as it can be invoked; none of this can be checked here, it is the
// caller's responsibility. Go functions do not qualify.
func Func(pc uintptr) Handler {
	return Handler{kind: handlerFunc, pc: pc}
}

// InfoFunc is like Func, but the function receives the signal number, a
// pointer to the delivery siginfo, and the interrupted context.
func InfoFunc(pc uintptr) Handler {
	return Handler{kind: handlerInfoFunc, pc: pc}
}

// Flags are SA_* delivery flags of a disposition.
type Flags uint64

// Action describes a process-wide signal disposition: what to do on
// delivery, flags modifying delivery, and the signals blocked while a
// handler runs.
type Action struct {
	Handler Handler
	Flags   Flags
	Mask    Set

	// The kernel's return trampoline, carried across installs on Linux so
	// that reinstalling a previously returned Action restores a working
	// handler.
	restorer uintptr
}

// NewAction returns an Action with the given handler, flags and
// handler-time mask. SA_SIGINFO is not caller-configurable: it is forced
// on for an InfoFunc handler and forced off for every other variant.
func NewAction(h Handler, flags Flags, mask Set) Action {
	if h.kind == handlerInfoFunc {
		flags |= SA_SIGINFO
	} else {
		flags &^= SA_SIGINFO
	}
	return Action{Handler: h, Flags: flags, Mask: mask}
}

// Install replaces the process-wide disposition for s with act, returning
// the disposition in effect immediately before. Callers overriding a
// disposition temporarily should retain the returned Action and reinstall
// it on every exit path.
//
// Installation affects all threads. It fails with unix.EINVAL if s is
// outside the valid range or is one the kernel reserves (SIGKILL,
// SIGSTOP).
func Install(s Signal, act Action) (Action, error) {
	if !Valid(s) {
		return Action{}, unix.EINVAL
	}
	return sigaction(s, act)
}
