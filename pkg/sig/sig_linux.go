//go:build linux

package sig

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Modes for rt_sigprocmask(2), from asm-generic/signal-defs.h.
const (
	sigBlock   = 0
	sigUnblock = 1
	sigSetmask = 2
)

// Disposition flags for rt_sigaction(2), from asm-generic/signal.h.
const (
	SA_NOCLDSTOP Flags = 0x00000001
	SA_NOCLDWAIT Flags = 0x00000002
	SA_SIGINFO   Flags = 0x00000004
	SA_ONSTACK   Flags = 0x08000000
	SA_RESTART   Flags = 0x10000000
	SA_NODEFER   Flags = 0x40000000
	SA_RESETHAND Flags = 0x80000000

	// Internal to the sigaction record; never surfaced in an Action's
	// Flags.
	saRestorer Flags = 0x04000000
)

// Special handler values, from asm-generic/signal-defs.h.
const (
	sigDfl = 0
	sigIgn = 1
)

// sigactiont is the record rt_sigaction(2) takes. This is the kernel's
// layout from asm-generic/signal.h, not the glibc struct sigaction.
type sigactiont struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     sigset
}

func sigprocmask(how How, set, oldset *sigset) error {
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGPROCMASK,
		uintptr(how),
		uintptr(unsafe.Pointer(set)),
		uintptr(unsafe.Pointer(oldset)),
		sigsetSize, 0, 0)
	runtime.KeepAlive(set)
	runtime.KeepAlive(oldset)
	if errno != 0 {
		return errno
	}
	return nil
}

func sigaction(sig Signal, act Action) (Action, error) {
	// Query the current disposition first. Its restorer is carried into
	// the new record when the caller doesn't bring one, so that a handler
	// installed now, or a previously returned Action reinstalled later,
	// still has a working return trampoline.
	var prev sigactiont
	if err := rtSigaction(sig, nil, &prev); err != nil {
		return Action{}, err
	}

	next := sigactiont{
		flags:    uint64(act.Flags),
		restorer: act.restorer,
		mask:     act.Mask.sigset,
	}
	switch act.Handler.kind {
	case handlerDefault:
		next.handler = sigDfl
	case handlerIgnore:
		next.handler = sigIgn
	default:
		next.handler = act.Handler.pc
	}
	if next.restorer == 0 {
		next.restorer = prev.restorer
	}
	if next.restorer != 0 {
		next.flags |= uint64(saRestorer)
	}

	if err := rtSigaction(sig, &next, nil); err != nil {
		return Action{}, err
	}
	return actionFromRaw(&prev), nil
}

func actionFromRaw(raw *sigactiont) Action {
	var h Handler
	switch raw.handler {
	case sigDfl:
		h = Default
	case sigIgn:
		h = Ignore
	default:
		if raw.flags&uint64(SA_SIGINFO) != 0 {
			h = InfoFunc(raw.handler)
		} else {
			h = Func(raw.handler)
		}
	}
	return Action{
		Handler:  h,
		Flags:    Flags(raw.flags) &^ saRestorer,
		Mask:     Set{sigset: raw.mask},
		restorer: raw.restorer,
	}
}

func rtSigaction(sig Signal, act, oldact *sigactiont) error {
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(act)),
		uintptr(unsafe.Pointer(oldact)),
		sigsetSize, 0, 0)
	runtime.KeepAlive(act)
	runtime.KeepAlive(oldact)
	if errno != 0 {
		return errno
	}
	return nil
}

func sigwait(set *sigset) (Signal, error) {
	// rt_sigtimedwait with a null timeout blocks until a member of set is
	// pending. Syscall6 rather than RawSyscall6: the call can block
	// indefinitely and the scheduler must know about it.
	n, _, errno := unix.Syscall6(unix.SYS_RT_SIGTIMEDWAIT,
		uintptr(unsafe.Pointer(set)),
		0, // siginfo not collected
		0, // no timeout
		sigsetSize, 0, 0)
	runtime.KeepAlive(set)
	if errno != 0 {
		return 0, errno
	}
	return Signal(n), nil
}

func raiseSelf(sig Signal) error {
	return unix.Tgkill(unix.Getpid(), unix.Gettid(), sig)
}
