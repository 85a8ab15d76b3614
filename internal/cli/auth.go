package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"finview/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an identifier (email or username) and password and runs
// the login transition. The error message, if any, comes from the session
// snapshot so the user sees the same string the state machine recorded.
func (a *App) Login(ctx context.Context) error {
	a.session.ClearError()

	identifier, err := getSimpleText(a.reader, "Enter email or username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, identifier, password); err != nil {
		if errors.Is(err, session.ErrOperationPending) {
			fmt.Println("Another operation is still running, try again in a moment.")
			return err
		}
		fmt.Printf("Login failed: %s\n", a.session.Snapshot().LastError)
		return err
	}

	fmt.Printf("Logged in as %s.\n", a.session.Snapshot().User.Username)
	return nil
}

// Register prompts for the account fields, creates the account, and reports
// the resulting session (registration logs the new user in on success).
func (a *App) Register(ctx context.Context) error {
	a.session.ClearError()

	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		if errors.Is(err, session.ErrOperationPending) {
			fmt.Println("Another operation is still running, try again in a moment.")
			return err
		}
		fmt.Printf("Registration failed: %s\n", a.session.Snapshot().LastError)
		return err
	}

	fmt.Printf("Welcome, %s!\n", a.session.Snapshot().User.Username)
	return nil
}

// Logout ends the session locally no matter what the server says, then
// drops the persisted cookie so a later run cannot resurrect it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		if errors.Is(err, session.ErrOperationPending) {
			fmt.Println("Another operation is still running, try again in a moment.")
		}
		return err
	}
	if err := a.jar.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear persisted cookies", "error", err)
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the current session state.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Snapshot()
	switch s.Status {
	case session.StatusAuthenticated:
		fmt.Printf("Logged in as %s (id %d).\n", s.User.Username, s.User.ID)
	default:
		fmt.Println("Not logged in.")
	}
	return nil
}
