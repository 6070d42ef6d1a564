package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/superapp/internal/client/client"
	"github.com/dmitrijs2005/superapp/internal/client/config"
	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/superapp/internal/client/session"
	"github.com/dmitrijs2005/superapp/internal/common"
	"github.com/dmitrijs2005/superapp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend answers login with T1 and every other call with 401. Bearer
// tokens seen on those calls are sent to seen.
func stubBackend(t *testing.T, seen chan<- string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "T1",
			"user": map[string]any{
				"id": "1", "email": "a@b.com", "username": "a", "token_balance": 0, "reputation_score": 0,
			},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		seen <- strings.TrimPrefix(r.Header.Get(common.AuthorizationHeaderName), common.BearerPrefix)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginThenUnauthorized_EndToEnd(t *testing.T) {
	ctx := context.Background()
	seen := make(chan string, 1)
	srv := stubBackend(t, seen)

	db, err := metadata.OpenSQLite(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := metadata.NewSQLiteRepository(db)

	store := session.NewStore(session.NewMetadataPersister(repo), logging.Nop())

	var navigations atomic.Int32
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIURL = srv.URL
	api := client.NewHTTPClient(cfg, store, client.NavigatorFunc(func(context.Context) { navigations.Add(1) }), logging.Nop())

	auth := NewAuthService(api, store)
	activity := NewActivityService(api, store)

	u, err := auth.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "1", Email: "a@b.com", Username: "a"}, *u)
	assert.True(t, store.IsAuthenticated())

	raw, err := repo.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "T1", string(raw))

	_, err = activity.Feed(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "T1", <-seen)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, int32(1), navigations.Load())
	raw, err = repo.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	restored := session.NewStore(session.NewMetadataPersister(repo), logging.Nop())
	require.NoError(t, restored.Restore(ctx))
	assert.False(t, restored.IsAuthenticated())
}
