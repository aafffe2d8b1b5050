// Package shell is the entry point for the interactive shell. It wires
// the signal layer and the terminal helpers into the classic job-control
// startup sequence: ignore the terminal-control signals, take over the
// terminal's foreground process group, and restore both on every exit
// path.
package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"src.tish.sh/pkg/logutil"
	"src.tish.sh/pkg/prog"
	"src.tish.sh/pkg/store"
	"src.tish.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (Program) ShouldRun(*prog.Flags) bool { return true }

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("tish takes no arguments")
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	sh := &Shell{fds: fds, cfg: cfg}
	return sh.Main()
}

// Shell is an interactive shell session.
type Shell struct {
	fds [3]*os.File
	cfg Config

	tty   *os.File
	store store.Store
}

// Main sets up signal dispositions and the terminal, then enters the
// prompt loop. Failure to set either up is fatal to the session.
func (sh *Shell) Main() error {
	signals, err := sh.cfg.ignoredSignals()
	if err != nil {
		return err
	}
	restoreSignals, err := ignoreSignals(signals)
	if err != nil {
		return fmt.Errorf("cannot set up signal dispositions: %v", err)
	}
	defer restoreSignals()

	if sys.IsATTY(sh.fds[0].Fd()) {
		tty, restoreTTY, err := takeTerminal()
		if err != nil {
			return err
		}
		sh.tty = tty
		defer restoreTTY()
	}

	if sh.cfg.HistoryDB != "" {
		st, err := store.NewStore(sh.cfg.HistoryDB)
		if err != nil {
			fmt.Fprintln(sh.fds[2], "Warning: cannot open history store:", err)
			fmt.Fprintln(sh.fds[2], "History will not be recorded.")
		} else {
			sh.store = st
			defer st.Close()
		}
	}

	sh.loop()
	return nil
}

func (sh *Shell) loop() {
	in := bufio.NewReader(sh.fds[0])
	for {
		sh.printPrompt()
		line, err := in.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		if line != "" || err == nil {
			if quit := sh.handleLine(line); quit {
				return
			}
		}
		if err != nil {
			// Print "exit" on EOF and exit, like other shells do.
			fmt.Fprintln(sh.fds[1], "exit")
			return
		}
	}
}

func (sh *Shell) handleLine(line string) (quit bool) {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(sh.fds[2], "Error:", err)
		return false
	}
	if cmd.kind == cmdEmpty {
		return false
	}
	sh.addHistory(line)
	if cmd.kind == cmdExit {
		return true
	}
	// A failing command is reported; the loop continues.
	if err := sh.run(cmd); err != nil {
		fmt.Fprintln(sh.fds[2], "Error:", err)
	}
	return false
}

func (sh *Shell) addHistory(line string) {
	if sh.store == nil {
		return
	}
	if _, err := sh.store.AddCmd(line); err != nil {
		logger.Println("add history:", err)
	}
}

func (sh *Shell) listHistory() error {
	if sh.store == nil {
		return fmt.Errorf("history is not enabled; set history-db in rc.yaml or pass -db")
	}
	upto, err := sh.store.NextCmdSeq()
	if err != nil {
		return err
	}
	return sh.store.IterateCmds(0, upto, func(cmd store.Cmd) {
		fmt.Fprintf(sh.fds[1], "%5d  %s\n", cmd.Seq, cmd.Text)
	})
}
