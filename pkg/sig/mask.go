//go:build linux || darwin

package sig

// How selects how Sigmask combines a set with the current thread mask.
type How int

// Sigmask modes.
const (
	SigBlock   How = sigBlock   // add the set's members to the mask
	SigUnblock How = sigUnblock // remove the set's members from the mask
	SigSetmask How = sigSetmask // replace the mask with the set
)

// Sigmask is the primitive behind all mask operations, manipulating the
// blocked-signal mask of the calling thread.
//
// If set is non-nil, the mask is updated from it according to how. If
// oldset is non-nil, the mask in effect immediately before the call is
// written to it; with a nil set the current mask is retrieved without
// modification. If both are nil, Sigmask does nothing and issues no
// system call.
//
// SIGKILL and SIGSTOP cannot be blocked; their presence in set is
// silently tolerated by the OS and is not an error.
func Sigmask(how How, set, oldset *Set) error {
	if set == nil && oldset == nil {
		return nil
	}
	var setp, oldp *sigset
	if set != nil {
		setp = &set.sigset
	}
	if oldset != nil {
		oldp = &oldset.sigset
	}
	return sigprocmask(how, setp, oldp)
}

// GetMask returns the current thread signal mask without modifying it.
// The mask is re-queried from the OS on every call; it is never cached.
func GetMask() (Set, error) {
	var old Set
	err := Sigmask(SigBlock, nil, &old)
	return old, err
}

// SetMask replaces the thread signal mask with s.
func (s *Set) SetMask() error {
	return Sigmask(SigSetmask, s, nil)
}

// Block adds s's members to the thread signal mask.
func (s *Set) Block() error {
	return Sigmask(SigBlock, s, nil)
}

// Unblock removes s's members from the thread signal mask.
func (s *Set) Unblock() error {
	return Sigmask(SigUnblock, s, nil)
}

// SwapMask atomically applies s to the thread signal mask according to
// how and returns the mask that was in effect immediately before, so the
// caller can restore it later with SetMask.
func (s *Set) SwapMask(how How) (Set, error) {
	var old Set
	err := Sigmask(how, s, &old)
	return old, err
}
