// Command tish is a tiny interactive shell.
package main

import (
	"os"

	"src.tish.sh/pkg/buildinfo"
	"src.tish.sh/pkg/prog"
	"src.tish.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, shell.Program{})))
}
