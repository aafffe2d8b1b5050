//go:build linux

package sig

import "golang.org/x/sys/unix"

// sigset is the kernel's signal mask representation: one bit per signal,
// with signal n at bit n-1. Masks returned by the kernel may carry bits
// above the valid range (realtime signals); they are kept opaque so that
// restoring a saved mask is exact.
type sigset uint64

// sigsetSize is the mask size in bytes that the rt_* signal syscalls
// expect. The kernel rejects the 128-byte glibc sigset_t; the raw calls
// take the 8-byte mask.
const sigsetSize = 8

func sigbit(sig Signal) sigset {
	return 1 << (uint(sig) - 1)
}

func sigemptyset(set *sigset) error {
	*set = 0
	return nil
}

func sigfillset(set *sigset) error {
	*set = sigbit(NSIG) - 1
	return nil
}

func sigaddset(set *sigset, sig Signal) error {
	if !Valid(sig) {
		return unix.EINVAL
	}
	*set |= sigbit(sig)
	return nil
}

func sigdelset(set *sigset, sig Signal) error {
	if !Valid(sig) {
		return unix.EINVAL
	}
	*set &^= sigbit(sig)
	return nil
}

func sigismember(set *sigset, sig Signal) (bool, error) {
	if !Valid(sig) {
		return false, unix.EINVAL
	}
	return *set&sigbit(sig) != 0, nil
}
