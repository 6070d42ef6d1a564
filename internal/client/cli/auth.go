package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/superapp/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for email, username and password and creates the
// account. The backend's token signs the user in right away.
func (a *App) Register(ctx context.Context) error {
	email, err := getRequired(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getRequired(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Register(ctx, email, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

// Login prompts for credentials and signs in. This is the login surface
// the gateway navigates to when the session is rejected.
func (a *App) Login(ctx context.Context) error {
	email, err := getRequired(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (balance %d)\n", displayName(u.Username, u.Email), u.TokenBalance)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(context.Context) error {
	w, err := a.authService.Whoami()
	if err != nil {
		return err
	}

	u := w.User
	fmt.Fprintf(a.out, "id:         %s\n", u.ID)
	fmt.Fprintf(a.out, "email:      %s\n", u.Email)
	fmt.Fprintf(a.out, "username:   %s\n", u.Username)
	fmt.Fprintf(a.out, "balance:    %d\n", u.TokenBalance)
	fmt.Fprintf(a.out, "reputation: %.2f\n", u.ReputationScore)
	if w.HasExpiry {
		fmt.Fprintf(a.out, "expires:    %s\n", w.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func displayName(username, email string) string {
	if username != "" {
		return username
	}
	return email
}
