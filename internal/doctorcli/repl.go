package doctorcli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
type execIface interface {
	Inbox(ctx context.Context) error
	Show(ctx context.Context) error
	Reply(ctx context.Context) error
	Resolve(ctx context.Context) error
	Watch(ctx context.Context) error
}

// runREPL mirrors the patient loop; a failed reply (e.g. to a case id
// that no longer exists) is printed rather than dropped.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("doctor> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn("Available commands: (i)nbox, show, reply, resolve, watch, exit")

		case "i", "inbox":
			cmdErr = a.Inbox(ctx)

		case "show":
			cmdErr = a.Show(ctx)

		case "reply":
			cmdErr = a.Reply(ctx)

		case "resolve":
			cmdErr = a.Resolve(ctx)

		case "watch":
			cmdErr = a.Watch(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}

		if cmdErr != nil {
			printlnFn("Error: " + cmdErr.Error())
		}
	}
}
