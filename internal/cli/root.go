package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"finview/internal/session"
)

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	switch s.Status {
	case session.StatusAuthenticated:
		return fmt.Sprintf("(%s)", s.User.Username)
	case session.StatusAnonymous:
		return "(anonymous)"
	default:
		return ""
	}
}

// Root runs the command loop until EOF or exit. Command handlers report
// their own failures; the loop only keeps reading.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to finview (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("fv %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: dashboard, refresh, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: login, register, whoami, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "dashboard", "refresh":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
