package shell

import (
	"fmt"

	"src.tish.sh/pkg/sig"
)

// defaultIgnored are the signals the shell must not react to while it
// owns the terminal: the terminal-control stops, quit and terminate.
var defaultIgnored = []sig.Signal{sig.SIGTSTP, sig.SIGTTOU, sig.SIGQUIT, sig.SIGTERM}

// ignoreSignals installs an ignore disposition for each given signal and
// returns a function that reinstates the dispositions in effect before.
// Dispositions are process-wide; this runs during single-threaded startup
// before anything else touches them.
func ignoreSignals(signals []sig.Signal) (restore func(), err error) {
	type saved struct {
		signal sig.Signal
		action sig.Action
	}
	var prev []saved
	restore = func() {
		// Reinstate in reverse order of installation.
		for i := len(prev) - 1; i >= 0; i-- {
			if _, err := sig.Install(prev[i].signal, prev[i].action); err != nil {
				logger.Printf("restore disposition for %v: %v", prev[i].signal, err)
			}
		}
	}

	ignore := sig.NewAction(sig.Ignore, 0, sig.Empty())
	for _, s := range signals {
		old, err := sig.Install(s, ignore)
		if err != nil {
			restore()
			return nil, fmt.Errorf("ignore %v: %v", s, err)
		}
		prev = append(prev, saved{s, old})
	}
	return restore, nil
}
