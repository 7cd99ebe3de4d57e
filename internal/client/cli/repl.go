package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context, role string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	OpenPage(ctx context.Context, page models.Role) error
	ToggleTheme(ctx context.Context) error
	Reset(ctx context.Context) error
}

type lineResult struct {
	line string
	err  error
}

// readLineCtx reads one trimmed line from reader, returning early with
// ctx.Err() if ctx is cancelled first. The reading goroutine is left behind
// blocked on the reader in that case; the process is about to exit anyway.
func readLineCtx(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := readLine(reader, strings.TrimSpace)
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL starts a simple read-eval-print loop for the hmarket CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on a cancelled ctx, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help            show available commands
//	  - register        create an account
//	  - login [role]    sign in, optionally hinting the buyer or seller page
//	  - buyer | seller  open a page (asks to log in first)
//	  - theme           toggle light/dark theme
//	  - reset           delete all stored accounts, the theme and the session
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - help            show available commands
//	  - buyer | seller  open the buyer or seller page
//	  - whoami          show the current account
//	  - theme           toggle light/dark theme
//	  - logout          log out (then asks to log in again)
//	  - reset           delete all stored accounts, the theme and the session
//	  - exit | quit     leave the program
//
// Handlers report their own failures to the user, so returned errors are
// ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("hm %s > ", statusFn()))
		line, err := readLineCtx(ctx, reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: buyer, seller, whoami, theme, logout, reset, exit")
			} else {
				printlnFn("Available commands: register, login [buyer|seller], buyer, seller, theme, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			role := ""
			if len(args) > 0 {
				role = args[0]
			}
			_ = a.Login(ctx, role)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "buyer":
			_ = a.OpenPage(ctx, models.RoleBuyer)

		case "seller":
			_ = a.OpenPage(ctx, models.RoleSeller)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
