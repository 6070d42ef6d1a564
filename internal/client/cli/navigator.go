package cli

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
)

// LoginNavigator is the forced navigation target used by the gateway. It
// only raises a flag; the REPL shows the login prompt before reading the
// next command. It never issues requests itself.
type LoginNavigator struct {
	pending atomic.Bool
	out     io.Writer
}

func NewLoginNavigator(out io.Writer) *LoginNavigator {
	return &LoginNavigator{out: out}
}

func (n *LoginNavigator) NavigateToLogin(context.Context) {
	if n.pending.CompareAndSwap(false, true) {
		fmt.Fprintln(n.out, "Your session has expired. Please log in again.")
	}
}

// takePending reports whether a navigation was requested and resets it.
func (n *LoginNavigator) takePending() bool {
	return n.pending.CompareAndSwap(true, false)
}
