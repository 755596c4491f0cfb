package cli

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
	isConfigured() bool
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Status(ctx context.Context) error
	Posts(ctx context.Context) error
	ShowPost(ctx context.Context) error
	NewPost(ctx context.Context) error
	RemovePost(ctx context.Context) error
	Pending(ctx context.Context) error
	Comments(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the blogsync CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not connected:
//	  - help           — show available commands
//	  - connect        — save server address and API key
//	  - exit | quit    — leave the program
//
//	Connected:
//	  - help           — show available commands
//	  - posts          — list posts
//	  - show           — show a single post (interactive id prompt)
//	  - new            — compose and publish a post
//	  - rm             — delete a post
//	  - pending        — list the pending comment queue
//	  - comments       — list all comments of one post
//	  - approve        — approve a comment
//	  - reject         — delete a comment
//	  - status         — show connection details
//	  - disconnect     — wipe the stored configuration
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("blog> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isConfigured() {
				printlnFn("Available commands: (p)osts, show, new, rm, pending, comments, approve, reject, status, disconnect, exit")
			} else {
				printlnFn("Available commands: connect, exit")
			}

		case "connect":
			_ = a.Connect(ctx)

		case "disconnect":
			_ = a.Disconnect(ctx)

		case "status":
			_ = a.Status(ctx)

		case "p", "posts":
			_ = a.Posts(ctx)

		case "show":
			_ = a.ShowPost(ctx)

		case "new":
			_ = a.NewPost(ctx)

		case "rm":
			_ = a.RemovePost(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
