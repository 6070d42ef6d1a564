package session

import (
	"testing"

	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_IsAuthenticated(t *testing.T) {
	u := &models.User{ID: "1"}

	assert.False(t, State{}.IsAuthenticated())
	assert.False(t, State{Token: "T1"}.IsAuthenticated())
	assert.False(t, State{User: u}.IsAuthenticated())
	assert.True(t, State{Token: "T1", User: u}.IsAuthenticated())
}

func TestState_WithSessionThenCleared_ReturnsInitial(t *testing.T) {
	s := State{}.WithSession(models.User{ID: "1", Email: "a@b.com"}, "T1")
	require.True(t, s.IsAuthenticated())

	assert.Equal(t, State{}, s.Cleared())
}

func TestState_WithSession_CopiesUser(t *testing.T) {
	u := models.User{ID: "1", Username: "a"}
	s := State{}.WithSession(u, "T1")
	u.Username = "changed"

	assert.Equal(t, "a", s.User.Username)
}

func TestState_WithBalance(t *testing.T) {
	s := State{}.WithSession(models.User{ID: "1", TokenBalance: 5}, "T1")

	next := s.WithBalance(42)
	assert.Equal(t, int64(42), next.User.TokenBalance)
	assert.Equal(t, int64(5), s.User.TokenBalance, "original state must not change")
	assert.Equal(t, "T1", next.Token)
}

func TestState_WithBalance_NoUserIsNoop(t *testing.T) {
	next := State{}.WithBalance(42)

	assert.Nil(t, next.User)
	assert.False(t, next.IsAuthenticated())
}
