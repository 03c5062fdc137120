package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/entities"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := MintToken(testSecret, Session{ID: "9999999999", Role: entities.RoleUser})
	require.NoError(t, err)

	sess, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", sess.ID)
	assert.Equal(t, entities.RoleUser, sess.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := MintToken(testSecret, Session{ID: "A1", Role: entities.RoleAdmin})
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func requestWithSession(t *testing.T, a *SessionAuth, s Session) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, a.SetSession(rec, s))
	req := httptest.NewRequest("GET", "/history", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	a := NewSessionAuth(testSecret)
	handler := a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/history", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireUserPassesSessionThrough(t *testing.T) {
	a := NewSessionAuth(testSecret)
	var got *Session
	handler := a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		got = s
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(t, a, Session{ID: "9999999999", Role: entities.RoleUser}))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "9999999999", got.ID)
}

func TestRequireAdminRejectsUserSession(t *testing.T) {
	a := NewSessionAuth(testSecret)
	handler := a.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(t, a, Session{ID: "9999999999", Role: entities.RoleUser}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/adminlogin", rec.Header().Get("Location"))
}

func TestRequireAdminAcceptsAdminSession(t *testing.T) {
	a := NewSessionAuth(testSecret)
	reached := false
	handler := a.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(t, a, Session{ID: "A1", Role: entities.RoleAdmin}))

	assert.True(t, reached)
}

func TestClearSessionExpiresCookie(t *testing.T) {
	a := NewSessionAuth(testSecret)
	rec := httptest.NewRecorder()
	a.ClearSession(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
