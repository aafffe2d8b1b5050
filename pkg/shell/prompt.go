package shell

import (
	"fmt"
	"os"
	"strings"

	"src.tish.sh/pkg/sys"
)

func (sh *Shell) printPrompt() {
	fmt.Fprintf(sh.fds[1], "%s%s", sh.promptPath(), sh.cfg.Prompt)
}

// promptPath is the working directory with the home prefix abbreviated
// to ~, further shortened so the prompt leaves room for input on narrow
// terminals.
func (sh *Shell) promptPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return "?"
	}
	if home, ok := os.LookupEnv("HOME"); ok && home != "" {
		if wd == home {
			wd = "~"
		} else if strings.HasPrefix(wd, home+"/") {
			wd = "~" + wd[len(home):]
		}
	}
	width := 80
	if sh.tty != nil {
		if _, col := sys.WinSize(sh.tty); col > 0 {
			width = col
		}
	}
	return abbrevPath(wd, width/3)
}

// abbrevPath shortens path to at most max cells by dropping leading
// components, keeping the tail, which is the part people recognize.
func abbrevPath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	// A degenerate terminal can leave no room for a tail at all.
	if max <= 1 {
		return "…"
	}
	for i, r := range path {
		if len(path)-i <= max-1 && r == '/' {
			return "…" + path[i:]
		}
	}
	return "…" + path[len(path)-max+1:]
}
