package shell

import (
	"fmt"
	"strings"
)

type cmdKind int

const (
	cmdEmpty cmdKind = iota
	cmdExit
	cmdCd
	cmdHistory
	cmdExec
)

// command is one parsed input line. The syntax is deliberately small:
// whitespace-separated words, the first of which may name a builtin.
type command struct {
	kind cmdKind
	dest string
	argv []string
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdEmpty}, nil
	}
	switch fields[0] {
	case "exit":
		return command{kind: cmdExit}, nil
	case "cd":
		switch len(fields) {
		case 1:
			return command{kind: cmdCd}, nil
		case 2:
			return command{kind: cmdCd, dest: fields[1]}, nil
		default:
			return command{}, fmt.Errorf("too many arguments for cd")
		}
	case "history":
		if len(fields) > 1 {
			return command{}, fmt.Errorf("too many arguments for history")
		}
		return command{kind: cmdHistory}, nil
	default:
		return command{kind: cmdExec, argv: fields}, nil
	}
}
