package prog

import (
	"errors"
	"os"
	"strings"
	"testing"
)

type testProgram struct {
	shouldRun bool
	run       func(fds [3]*os.File, f *Flags, args []string) error
}

func (p testProgram) ShouldRun(*Flags) bool { return p.shouldRun }

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.run == nil {
		return nil
	}
	return p.run(fds, f, args)
}

func run(p Program, args ...string) (exit int, stdout, stderr string) {
	fds, read := makeFds()
	exit = Run(fds, append([]string{"tish"}, args...), p)
	stdout, stderr = read()
	return
}

func makeFds() (fds [3]*os.File, read func() (stdout, stderr string)) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		panic(err)
	}
	r1, w1, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	r2, w2, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return [3]*os.File{devNull, w1, w2}, func() (string, string) {
		w1.Close()
		w2.Close()
		defer devNull.Close()
		defer r1.Close()
		defer r2.Close()
		return readAll(r1), readAll(r2)
	}
}

func readAll(f *os.File) string {
	var sb strings.Builder
	buf := make([]byte, 1024)
	for {
		n, err := f.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			return sb.String()
		}
	}
}

func TestRun_OK(t *testing.T) {
	exit, _, _ := run(testProgram{shouldRun: true})
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
}

func TestRun_Help(t *testing.T) {
	exit, stdout, _ := run(testProgram{shouldRun: true}, "-help")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if !strings.Contains(stdout, "Usage: tish") {
		t.Errorf("stdout does not contain usage: %q", stdout)
	}
}

func TestRun_BadFlag(t *testing.T) {
	exit, _, stderr := run(testProgram{shouldRun: true}, "-bad-flag")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "Usage: tish") {
		t.Errorf("stderr does not contain usage: %q", stderr)
	}
}

func TestRun_BadUsage(t *testing.T) {
	p := testProgram{shouldRun: true, run: func([3]*os.File, *Flags, []string) error {
		return BadUsage("lorem ipsum")
	}}
	exit, _, stderr := run(p)
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "lorem ipsum") {
		t.Errorf("stderr does not contain message: %q", stderr)
	}
}

func TestRun_Exit(t *testing.T) {
	p := testProgram{shouldRun: true, run: func([3]*os.File, *Flags, []string) error {
		return Exit(3)
	}}
	exit, _, stderr := run(p)
	if exit != 3 {
		t.Errorf("exit = %d, want 3", exit)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_Exit0(t *testing.T) {
	if Exit(0) != nil {
		t.Error("Exit(0) is not nil")
	}
}

func TestRun_OtherError(t *testing.T) {
	p := testProgram{shouldRun: true, run: func([3]*os.File, *Flags, []string) error {
		return errors.New("lorem ipsum")
	}}
	exit, _, stderr := run(p)
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "lorem ipsum") {
		t.Errorf("stderr does not contain message: %q", stderr)
	}
}

func TestComposite_PicksFirstSuitable(t *testing.T) {
	ran := 0
	mk := func(i int, suitable bool) Program {
		return testProgram{shouldRun: suitable, run: func([3]*os.File, *Flags, []string) error {
			ran = i
			return nil
		}}
	}
	exit, _, _ := run(Composite(mk(1, false), mk(2, true), mk(3, true)))
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if ran != 2 {
		t.Errorf("ran program %d, want 2", ran)
	}
}

func TestComposite_NoSuitable(t *testing.T) {
	exit, _, stderr := run(Composite(testProgram{shouldRun: false}))
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "internal error") {
		t.Errorf("stderr does not contain internal error: %q", stderr)
	}
}
