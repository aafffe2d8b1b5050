//go:build linux || darwin

package sig

// Set is a set of signals, backed by the platform's raw signal mask
// representation. Sets are plain values; copying one copies its
// membership. Construct them with Empty or All.
type Set struct {
	sigset sigset
}

// Empty returns a set with no members.
func Empty() Set {
	var s Set
	// Initializing the raw mask cannot fail on a well-formed platform.
	sigemptyset(&s.sigset)
	return s
}

// All returns a set containing every signal in [1, NSIG).
func All() Set {
	var s Set
	sigfillset(&s.sigset)
	return s
}

// Add adds sig to the set. It fails with unix.EINVAL if sig is outside
// the valid range.
func (s *Set) Add(sig Signal) error {
	return sigaddset(&s.sigset, sig)
}

// Remove removes sig from the set. It fails with unix.EINVAL if sig is
// outside the valid range.
func (s *Set) Remove(sig Signal) error {
	return sigdelset(&s.sigset, sig)
}

// Clear removes every member from the set.
func (s *Set) Clear() error {
	return sigemptyset(&s.sigset)
}

// Contains reports whether sig is a member of the set. It fails with
// unix.EINVAL if sig is outside the valid range.
func (s Set) Contains(sig Signal) (bool, error) {
	return sigismember(&s.sigset, sig)
}

// Extend adds every member of other to s, keeping s's existing members.
// If an addition fails, s retains the members added so far; there is no
// rollback.
func (s *Set) Extend(other *Set) error {
	for sig := Signal(1); sig < NSIG; sig++ {
		member, err := other.Contains(sig)
		if err != nil {
			return err
		}
		if member {
			if err := s.Add(sig); err != nil {
				return err
			}
		}
	}
	return nil
}
