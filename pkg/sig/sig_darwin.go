//go:build darwin

package sig

/*
#include <signal.h>
#include <stdint.h>
#include <string.h>

static int tish_sigaction(int sig, uintptr_t handler, sigset_t mask, int flags,
		uintptr_t *oldhandler, sigset_t *oldmask, int *oldflags) {
	struct sigaction act;
	struct sigaction oldact;

	memset(&act, 0, sizeof(act));
	memset(&oldact, 0, sizeof(oldact));
	act.sa_sigaction = (void (*)(int, siginfo_t *, void *))handler;
	act.sa_mask = mask;
	act.sa_flags = flags;
	if (sigaction(sig, &act, &oldact) != 0) {
		return -1;
	}
	*oldhandler = (uintptr_t)oldact.sa_sigaction;
	*oldmask = oldact.sa_mask;
	*oldflags = oldact.sa_flags;
	return 0;
}

static int tish_sigwait(sigset_t *set, int *sig) {
	return sigwait(set, sig);
}
*/
import "C"

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Modes for pthread_sigmask(3).
const (
	sigBlock   = C.SIG_BLOCK
	sigUnblock = C.SIG_UNBLOCK
	sigSetmask = C.SIG_SETMASK
)

// Disposition flags for sigaction(2).
const (
	SA_NOCLDSTOP Flags = C.SA_NOCLDSTOP
	SA_NOCLDWAIT Flags = C.SA_NOCLDWAIT
	SA_SIGINFO   Flags = C.SA_SIGINFO
	SA_ONSTACK   Flags = C.SA_ONSTACK
	SA_RESTART   Flags = C.SA_RESTART
	SA_NODEFER   Flags = C.SA_NODEFER
	SA_RESETHAND Flags = C.SA_RESETHAND
)

// Special handler values. SIG_DFL and SIG_IGN are function-pointer casts
// in the headers, which cgo cannot surface as constants.
const (
	sigDfl = 0
	sigIgn = 1
)

// sigset wraps the platform sigset_t, as FdSet wraps fd_set.
type sigset C.sigset_t

func (s *sigset) c() *C.sigset_t {
	return (*C.sigset_t)(s)
}

func sigemptyset(set *sigset) error {
	if r, err := C.sigemptyset(set.c()); r != 0 {
		return err
	}
	return nil
}

func sigfillset(set *sigset) error {
	if r, err := C.sigfillset(set.c()); r != 0 {
		return err
	}
	return nil
}

func sigaddset(set *sigset, sig Signal) error {
	if !Valid(sig) {
		return unix.EINVAL
	}
	if r, err := C.sigaddset(set.c(), C.int(sig)); r != 0 {
		return err
	}
	return nil
}

func sigdelset(set *sigset, sig Signal) error {
	if !Valid(sig) {
		return unix.EINVAL
	}
	if r, err := C.sigdelset(set.c(), C.int(sig)); r != 0 {
		return err
	}
	return nil
}

func sigismember(set *sigset, sig Signal) (bool, error) {
	if !Valid(sig) {
		return false, unix.EINVAL
	}
	r, err := C.sigismember(set.c(), C.int(sig))
	switch r {
	case 1:
		return true, nil
	case 0:
		return false, nil
	case -1:
		return false, err
	}
	// Outside sigismember's documented return domain. That is a platform
	// or binding bug, not a runtime condition; don't turn it into a
	// misleading result.
	panic(fmt.Sprintf("sigismember returned %d", int(r)))
}

func sigprocmask(how How, set, oldset *sigset) error {
	// pthread_sigmask reports failure as a returned error number, not
	// through errno.
	if r := C.pthread_sigmask(C.int(how), set.c(), oldset.c()); r != 0 {
		return syscall.Errno(r)
	}
	return nil
}

func sigaction(sig Signal, act Action) (Action, error) {
	var handler uintptr
	switch act.Handler.kind {
	case handlerDefault:
		handler = sigDfl
	case handlerIgnore:
		handler = sigIgn
	default:
		handler = act.Handler.pc
	}

	var (
		oldhandler C.uintptr_t
		oldmask    C.sigset_t
		oldflags   C.int
	)
	r, err := C.tish_sigaction(C.int(sig), C.uintptr_t(handler),
		C.sigset_t(act.Mask.sigset), C.int(act.Flags),
		&oldhandler, &oldmask, &oldflags)
	if r != 0 {
		return Action{}, err
	}

	var h Handler
	switch uintptr(oldhandler) {
	case sigDfl:
		h = Default
	case sigIgn:
		h = Ignore
	default:
		if Flags(oldflags)&SA_SIGINFO != 0 {
			h = InfoFunc(uintptr(oldhandler))
		} else {
			h = Func(uintptr(oldhandler))
		}
	}
	return Action{
		Handler: h,
		Flags:   Flags(oldflags),
		Mask:    Set{sigset: sigset(oldmask)},
	}, nil
}

func sigwait(set *sigset) (Signal, error) {
	var sig C.int
	// Like pthread_sigmask, sigwait returns the error number directly.
	if r := C.tish_sigwait(set.c(), &sig); r != 0 {
		return 0, syscall.Errno(r)
	}
	return Signal(sig), nil
}

func raiseSelf(sig Signal) error {
	if r, err := C.raise(C.int(sig)); r != 0 {
		return err
	}
	return nil
}
