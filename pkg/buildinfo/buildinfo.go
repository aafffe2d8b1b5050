// Package buildinfo contains build information.
//
// The version can be overridden during compilation by passing
// -ldflags "-X src.tish.sh/pkg/buildinfo.Version=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"src.tish.sh/pkg/prog"
)

// Version identifies the version of tish.
var Version = "0.1.0-dev"

// Program is the buildinfo subprogram, handling -version.
type Program struct{}

func (Program) ShouldRun(f *prog.Flags) bool { return f.Version }

func (Program) Run(fds [3]*os.File, _ *prog.Flags, _ []string) error {
	fmt.Fprintln(fds[1], "tish", Version, runtime.Version())
	return nil
}
