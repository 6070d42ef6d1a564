package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if w, err := a.authService.Whoami(); err == nil {
		s = fmt.Sprintf("%s [%d] ", displayName(w.User.Username, w.User.Email), w.User.TokenBalance)
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive session until the user exits or ctx is done.
// A restored session skips the initial login prompt.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SuperApp CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Session restored for %s\n", a.getStatus())
	} else {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register'.")
	}

	runREPL(ctx, a, a.getStatus, a.navigator.takePending, a.reader)
}
