package patientcli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Submit(ctx context.Context) error
	Attach(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Watch(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to methods on a. The
// loop exits on EOF or when the user types "exit" or "quit". Handler
// errors are printed so a failed submission never vanishes silently.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("patient> ")
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
			printlnFn("Available commands: submit, attach, (l)ist, show, watch, exit")

		case "submit":
			cmdErr = a.Submit(ctx)

		case "attach":
			cmdErr = a.Attach(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = a.Show(ctx)

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
