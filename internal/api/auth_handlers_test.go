package api

import (
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/auth"
	"rentwheels/internal/repository"
	"rentwheels/internal/service"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"login.html":       `<p>login{{if .Message}} msg={{.Message}}{{end}}</p>`,
		"admin-login.html": `<p>admin login{{if .Message}} msg={{.Message}}{{end}}</p>`,
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	view, err := NewRenderer(dir)
	require.NoError(t, err)
	return view
}

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := service.NewAuthService(repository.NewUserRepository(db), repository.NewAdminRepository(db))
	sessions := auth.NewSessionAuth([]byte("test-secret"))
	return NewAuthHandler(svc, sessions, testRenderer(t)), mock
}

func TestSignupDuplicatePhoneRerendersLogin(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	form := url.Values{"name": {"Asha"}, "phone": {"9999999999"}, "password": {"secret"}}
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	// A duplicate phone is a re-rendered form with a message, not an error
	// status and not a redirect.
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestSignupSuccessSetsSessionAndRedirectsHome(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	form := url.Values{"name": {"Asha"}, "phone": {"9999999999"}, "password": {"secret"}}
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, 303, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.NotEmpty(t, rec.Result().Cookies())
}

func TestLoginUnknownUserRerendersLogin(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone = \$1`).
		WithArgs("0000000000").
		WillReturnRows(sqlmock.NewRows([]string{"phone", "name", "password_hash"}))

	form := url.Values{"identifier": {"0000000000"}, "password": {"whatever"}}
	req := httptest.NewRequest("POST", "/login/user", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(req, map[string]string{"type": "user"})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, 303, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
