package session

import "github.com/dmitrijs2005/superapp/internal/client/models"

// State is the in-memory session. Transitions return a new State and never
// touch storage, so they can be tested on their own.
type State struct {
	Token string
	User  *models.User
}

// IsAuthenticated reports whether both the token and the identity are set.
func (s State) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// WithSession replaces the identity and the token together.
func (s State) WithSession(user models.User, token string) State {
	u := user
	return State{Token: token, User: &u}
}

// Cleared returns the unauthenticated state.
func (s State) Cleared() State {
	return State{}
}

// WithBalance sets the token balance of the current user. Without a user
// the state is returned unchanged.
func (s State) WithBalance(balance int64) State {
	if s.User == nil {
		return s
	}
	u := *s.User
	u.TokenBalance = balance
	return State{Token: s.Token, User: &u}
}

// clone detaches the user pointer so callers cannot mutate the store.
func (s State) clone() State {
	if s.User == nil {
		return s
	}
	u := *s.User
	return State{Token: s.Token, User: &u}
}
