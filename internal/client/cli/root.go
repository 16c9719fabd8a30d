package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.cred.DisplayName() + " "
	}
	if mode := a.getMode(); mode != ModeUnknown {
		s += string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

// Root runs the interactive loop: one command per line, dispatched to the
// handlers below. The loop exits on EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the AI interview trainer (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "interview %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.Register(ctx)
		case "verify":
			a.Verify(ctx)
		case "resend":
			a.Resend(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "start":
			a.StartInterview(ctx, strings.Join(args, " "))
		case "say":
			a.Say(ctx, strings.Join(args, " "))
		case "end":
			a.EndInterview(ctx)
		case "history":
			a.History(ctx)
		case "progress":
			a.Progress(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			a.notifier.Notify("unknown command: "+cmd, SeverityWarning)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: start [topic], say <message>, end, history, progress, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, verify, resend, login, exit")
	}
}
