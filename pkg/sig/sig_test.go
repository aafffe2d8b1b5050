//go:build linux || darwin

package sig

import (
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func mustNil(e error) {
	if e != nil {
		panic("error is not nil: " + e.Error())
	}
}

func TestEmptyAndAll(t *testing.T) {
	empty := Empty()
	all := All()
	for s := Signal(1); s < NSIG; s++ {
		if member, err := empty.Contains(s); member || err != nil {
			t.Errorf("Empty().Contains(%v) => (%v, %v), want (false, <nil>)", s, member, err)
		}
		if member, err := all.Contains(s); !member || err != nil {
			t.Errorf("All().Contains(%v) => (%v, %v), want (true, <nil>)", s, member, err)
		}
	}
}

func TestAddRemove(t *testing.T) {
	s := Empty()
	mustNil(s.Add(SIGUSR1))
	if member, _ := s.Contains(SIGUSR1); !member {
		t.Errorf("set doesn't contain SIGUSR1 after Add")
	}
	if member, _ := s.Contains(SIGUSR2); member {
		t.Errorf("set contains SIGUSR2, which was never added")
	}
	mustNil(s.Remove(SIGUSR1))
	if member, _ := s.Contains(SIGUSR1); member {
		t.Errorf("set contains SIGUSR1 after Remove")
	}
}

func TestClear(t *testing.T) {
	s := All()
	mustNil(s.Clear())
	mustNil(s.Clear())
	empty := Empty()
	for sig := Signal(1); sig < NSIG; sig++ {
		member, err := s.Contains(sig)
		mustNil(err)
		wantMember, err := empty.Contains(sig)
		mustNil(err)
		if member != wantMember {
			t.Errorf("cleared set and Empty() disagree on %v", sig)
		}
	}
}

func TestExtend(t *testing.T) {
	oneSignal := Empty()
	mustNil(oneSignal.Add(SIGUSR1))

	twoSignals := Empty()
	mustNil(twoSignals.Add(SIGUSR2))
	mustNil(twoSignals.Extend(&oneSignal))

	for _, sig := range []Signal{SIGUSR1, SIGUSR2} {
		if member, _ := twoSignals.Contains(sig); !member {
			t.Errorf("extended set doesn't contain %v", sig)
		}
	}
	// Extend doesn't mutate its source.
	if member, _ := oneSignal.Contains(SIGUSR2); member {
		t.Errorf("source set gained SIGUSR2 from Extend")
	}
}

func TestOutOfRange(t *testing.T) {
	s := Empty()
	for _, sig := range []Signal{0, -1, NSIG, NSIG + 10} {
		if err := s.Add(sig); err == nil {
			t.Errorf("Add(%v) => <nil>, want error", sig)
		}
		if err := s.Remove(sig); err == nil {
			t.Errorf("Remove(%v) => <nil>, want error", sig)
		}
		if _, err := s.Contains(sig); err == nil {
			t.Errorf("Contains(%v) => <nil> error, want non-<nil>", sig)
		}
		if _, err := Install(sig, NewAction(Ignore, 0, Empty())); err == nil {
			t.Errorf("Install(%v) => <nil>, want error", sig)
		}
	}
}

func TestSigmaskNoop(t *testing.T) {
	// Both pointers nil is a documented no-op.
	if err := Sigmask(SigSetmask, nil, nil); err != nil {
		t.Errorf("Sigmask(SigSetmask, nil, nil) => %v, want <nil>", err)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	save, err := GetMask()
	mustNil(err)
	defer save.SetMask()

	s := Empty()
	mustNil(s.Add(SIGUSR1))
	mustNil(s.Block())

	cur, err := GetMask()
	mustNil(err)
	if member, _ := cur.Contains(SIGUSR1); !member {
		t.Errorf("mask doesn't contain SIGUSR1 after Block")
	}

	mustNil(s.Unblock())
	cur, err = GetMask()
	mustNil(err)
	if member, _ := cur.Contains(SIGUSR1); member {
		t.Errorf("mask contains SIGUSR1 after Unblock")
	}
}

func TestSwapMaskSymmetry(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	save, err := GetMask()
	mustNil(err)
	defer save.SetMask()

	s := Empty()
	mustNil(s.Add(SIGUSR1))
	old, err := s.SwapMask(SigSetmask)
	mustNil(err)

	cur, err := GetMask()
	mustNil(err)
	if member, _ := cur.Contains(SIGUSR1); !member {
		t.Errorf("mask doesn't contain SIGUSR1 after SwapMask")
	}

	// Swapping the returned mask back in restores the original state.
	swapped, err := old.SwapMask(SigSetmask)
	mustNil(err)
	if member, _ := swapped.Contains(SIGUSR1); !member {
		t.Errorf("second swap didn't return the mask installed by the first")
	}
	cur, err = GetMask()
	mustNil(err)
	for sig := Signal(1); sig < NSIG; sig++ {
		member, err := cur.Contains(sig)
		mustNil(err)
		wantMember, err := save.Contains(sig)
		mustNil(err)
		if member != wantMember {
			t.Errorf("restored mask and saved mask disagree on %v", sig)
		}
	}
}

func TestBlockToleratesUncatchable(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	save, err := GetMask()
	mustNil(err)
	defer save.SetMask()

	// SIGKILL and SIGSTOP cannot be blocked; the OS drops them from the
	// request silently and the call still succeeds.
	s := Empty()
	mustNil(s.Add(SIGKILL))
	mustNil(s.Add(SIGSTOP))
	if err := s.Block(); err != nil {
		t.Errorf("Block({SIGKILL, SIGSTOP}) => %v, want <nil>", err)
	}
	mustNil(s.Unblock())
}

func TestRaiseWait(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("synchronous wait timing is flaky on Darwin")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s := Empty()
	mustNil(s.Add(SIGUSR1))
	mustNil(s.Add(SIGUSR2))
	old, err := s.SwapMask(SigBlock)
	mustNil(err)
	defer old.SetMask()

	mustNil(Raise(SIGUSR1))
	got, err := s.Wait()
	mustNil(err)
	if got != SIGUSR1 {
		t.Errorf("Wait => %v, want SIGUSR1", got)
	}

	// The first wait consumed SIGUSR1; a second raise-and-wait must see
	// only the new signal.
	mustNil(Raise(SIGUSR2))
	got, err = s.Wait()
	mustNil(err)
	if got != SIGUSR2 {
		t.Errorf("Wait => %v, want SIGUSR2", got)
	}
}

func TestInstallIgnore(t *testing.T) {
	// The default action for SIGUSR2 terminates the process. With an
	// ignore disposition installed, raising it must have no effect.
	prev, err := Install(SIGUSR2, NewAction(Ignore, 0, Empty()))
	mustNil(err)
	defer Install(SIGUSR2, prev)

	mustNil(Raise(SIGUSR2))
	// Reaching this point means the default action did not run.
}

func TestInstallReturnsPrevious(t *testing.T) {
	prev, err := Install(SIGUSR2, NewAction(Ignore, SA_RESTART, Empty()))
	mustNil(err)
	defer Install(SIGUSR2, prev)

	old, err := Install(SIGUSR2, NewAction(Default, 0, Empty()))
	mustNil(err)
	if old.Handler != Ignore {
		t.Errorf("previous handler is %v, want Ignore", old.Handler)
	}
	if old.Flags&SA_RESTART == 0 {
		t.Errorf("previous flags lost SA_RESTART")
	}
}

func TestInstallUncatchable(t *testing.T) {
	for _, sig := range []Signal{SIGKILL, SIGSTOP} {
		if _, err := Install(sig, NewAction(Ignore, 0, Empty())); err != unix.EINVAL {
			t.Errorf("Install(%v) => %v, want EINVAL", sig, err)
		}
	}
}

func TestNewActionDerivesSiginfo(t *testing.T) {
	a := NewAction(InfoFunc(0x1234), 0, Empty())
	if a.Flags&SA_SIGINFO == 0 {
		t.Errorf("NewAction with InfoFunc handler lacks SA_SIGINFO")
	}
	b := NewAction(Ignore, SA_SIGINFO|SA_RESTART, Empty())
	if b.Flags&SA_SIGINFO != 0 {
		t.Errorf("NewAction with Ignore handler kept SA_SIGINFO")
	}
	if b.Flags&SA_RESTART == 0 {
		t.Errorf("NewAction dropped SA_RESTART")
	}
}
