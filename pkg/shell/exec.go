//go:build unix

package shell

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"src.tish.sh/pkg/sys"
)

func (sh *Shell) run(cmd command) error {
	switch cmd.kind {
	case cmdCd:
		return chdir(cmd.dest)
	case cmdHistory:
		return sh.listHistory()
	case cmdExec:
		return sh.exec(cmd.argv)
	default:
		panic(fmt.Sprintf("bad command kind %d", cmd.kind))
	}
}

func chdir(dest string) error {
	if dest == "" {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			return fmt.Errorf("HOME not set")
		}
		dest = home
	}
	return os.Chdir(dest)
}

// exec runs an external command in its own process group. When the shell
// owns a terminal, the child's group becomes the foreground group for
// the duration of the command and the shell reclaims the terminal after
// it exits.
func (sh *Shell) exec(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%s: command not found", argv[0])
	}

	cmd := &exec.Cmd{
		Path:        path,
		Args:        argv,
		Stdin:       sh.fds[0],
		Stdout:      sh.fds[1],
		Stderr:      sh.fds[2],
		SysProcAttr: &syscall.SysProcAttr{Setpgid: true},
	}
	if sh.tty != nil {
		cmd.SysProcAttr.Foreground = true
		cmd.SysProcAttr.Ctty = int(sh.tty.Fd())
		// Setting the foreground group from the shell's group needs
		// SIGTTOU ignored, which Main has arranged.
		defer func() {
			if err := sys.Tcsetpgrp(int(sh.tty.Fd()), unix.Getpgrp()); err != nil {
				logger.Println("reclaim terminal:", err)
			}
		}()
	}

	err = cmd.Run()
	if _, ok := err.(*exec.ExitError); ok {
		// Non-zero exit is not an error the loop needs to report; the
		// child has already written its diagnostics.
		return nil
	}
	return err
}
