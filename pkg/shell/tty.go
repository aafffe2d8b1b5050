//go:build unix

package shell

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"src.tish.sh/pkg/sys"
)

// takeTerminal opens the controlling terminal, moves the shell into its
// own process group, and makes that group the terminal's foreground
// group. The returned function undoes both and closes the terminal.
//
// Reassigning the foreground group from the background raises SIGTTOU,
// which is why the ignore dispositions must already be installed.
func takeTerminal() (tty *os.File, restore func(), err error) {
	tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open /dev/tty: %v", err)
	}
	fd := int(tty.Fd())

	pid := os.Getpid()
	origPgid := unix.Getpgrp()
	origFg, err := sys.Tcgetpgrp(fd)
	if err != nil {
		tty.Close()
		return nil, nil, fmt.Errorf("cannot get terminal's foreground process group: %v", err)
	}

	if origPgid != pid {
		if err := unix.Setpgid(0, 0); err != nil {
			tty.Close()
			return nil, nil, fmt.Errorf("cannot move self to own process group: %v", err)
		}
	}
	if err := sys.Tcsetpgrp(fd, pid); err != nil {
		if origPgid != pid {
			unix.Setpgid(0, origPgid)
		}
		tty.Close()
		return nil, nil, fmt.Errorf("cannot set terminal's foreground process group: %v", err)
	}

	restore = func() {
		if err := sys.Tcsetpgrp(fd, origFg); err != nil {
			logger.Println("restore foreground process group:", err)
		}
		if origPgid != pid {
			if err := unix.Setpgid(0, origPgid); err != nil {
				logger.Println("restore process group:", err)
			}
		}
		tty.Close()
	}
	return tty, restore, nil
}
