package client

import (
	"net/http"

	"github.com/dmitrijs2005/superapp/internal/common"
	"github.com/dmitrijs2005/superapp/internal/logging"
	"github.com/google/uuid"
)

// authTransport decorates every outgoing request with the session token and
// tears the session down when the backend rejects a request. Rejection means
// 401 by default; 403 joins it only through WithInvalidatingStatus or
// config.InvalidateOnForbidden.
//
// For a request that carried a token, teardown goes through
// Session.InvalidateToken with the token that was actually sent. Only the
// first caller holding a given token wins the compare-and-clear, so any
// number of concurrent rejections produce one clear and one navigation, and
// a rejection that arrives after a fresh login leaves the new session intact.
//
// A rejected request without a token goes through
// Session.InvalidateAnonymous, which drops any leftover durable token unless
// a login completed meanwhile, and then navigates to login. Repeated
// anonymous rejections may navigate more than once; the Navigator collapses
// them.
type authTransport struct {
	base         http.RoundTripper
	session      Session
	navigator    Navigator
	invalidating map[int]struct{}
	log          logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	req = req.Clone(ctx)

	token := t.session.Token()
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	} else {
		req.Header.Del(common.AuthorizationHeaderName)
	}
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if _, ok := t.invalidating[resp.StatusCode]; !ok {
		return resp, nil
	}

	var (
		cleared bool
		ierr    error
	)
	if token != "" {
		cleared, ierr = t.session.InvalidateToken(ctx, token)
	} else {
		cleared, ierr = t.session.InvalidateAnonymous(ctx)
	}
	if ierr != nil {
		t.log.Warn(ctx, "session storage not cleared", "error", ierr)
	}
	if cleared {
		t.log.Info(ctx, "session invalidated by backend",
			"status", resp.StatusCode,
			"path", req.URL.Path,
			"request_id", req.Header.Get(common.RequestIDHeaderName))
		t.navigator.NavigateToLogin(ctx)
	}
	return resp, nil
}
