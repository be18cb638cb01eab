package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthIsPublic(t *testing.T) {
	ta := newTestAPI(t, withAuth("key", "secret"))

	w := ta.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	ta := newTestAPI(t)

	w := ta.do(t, http.MethodGet, "/api/health", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestAuth_OpenWhenUnconfigured(t *testing.T) {
	ta := newTestAPI(t)
	assert.Equal(t, http.StatusOK, ta.do(t, http.MethodGet, "/api/ingredients", nil).Code)
}

func TestAuth_APIKey(t *testing.T) {
	ta := newTestAPI(t, withAuth("key", ""))

	assert.Equal(t, http.StatusUnauthorized, ta.do(t, http.MethodGet, "/api/ingredients", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ta.do(t, http.MethodGet, "/api/ingredients", nil, "X-API-Key", "wrong").Code)
	assert.Equal(t, http.StatusOK, ta.do(t, http.MethodGet, "/api/ingredients", nil, "X-API-Key", "key").Code)
}

func TestAuth_TokenExchange(t *testing.T) {
	ta := newTestAPI(t, withAuth("key", "secret"))

	w := ta.do(t, http.MethodPost, "/api/auth/token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ta.do(t, http.MethodPost, "/api/auth/token", nil, "X-API-Key", "key")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[struct {
		Token string `json:"token"`
	}](t, w).Token
	require.NotEmpty(t, token)

	w = ta.do(t, http.MethodGet, "/api/dashboard", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodGet, "/api/dashboard?token="+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodGet, "/api/dashboard", nil, "Authorization", "Bearer "+token+"x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TokenExchangeDisabled(t *testing.T) {
	ta := newTestAPI(t, withAuth("key", ""))

	w := ta.do(t, http.MethodPost, "/api/auth/token", nil, "X-API-Key", "key")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestVerifyToken(t *testing.T) {
	now := time.Now()

	valid, _, err := IssueToken("secret", time.Hour, now)
	require.NoError(t, err)
	assert.NoError(t, verifyToken("secret", valid, time.Now))
	assert.Error(t, verifyToken("other", valid, time.Now))

	expired, _, err := IssueToken("secret", time.Hour, now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Error(t, verifyToken("secret", expired, time.Now))
}

func TestVerifyToken_UsesGivenClock(t *testing.T) {
	issued := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	token, _, err := IssueToken("secret", time.Hour, issued)
	require.NoError(t, err)

	at := func(ts time.Time) func() time.Time { return func() time.Time { return ts } }
	assert.NoError(t, verifyToken("secret", token, at(issued.Add(30*time.Minute))))
	assert.Error(t, verifyToken("secret", token, at(issued.Add(2*time.Hour))))
}
