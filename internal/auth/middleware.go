package auth

import (
	"context"
	"net/http"

	"rentwheels/internal/entities"
)

const cookieName = "rw_session"

type contextKey struct{}

// SessionAuth gates handlers on the role carried by the session cookie.
type SessionAuth struct {
	Secret []byte
}

func NewSessionAuth(secret []byte) *SessionAuth {
	return &SessionAuth{Secret: secret}
}

func (a *SessionAuth) SetSession(w http.ResponseWriter, s Session) error {
	token, err := MintToken(a.Secret, s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (a *SessionAuth) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// SessionFrom returns the session attached to the request, if any. Pages
// that render differently for logged-in visitors use this directly.
func (a *SessionAuth) SessionFrom(r *http.Request) *Session {
	if s, ok := r.Context().Value(contextKey{}).(*Session); ok {
		return s
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	s, err := ParseToken(a.Secret, cookie.Value)
	if err != nil {
		return nil
	}
	return s
}

// RequireUser redirects to the home page when no user session is present.
func (a *SessionAuth) RequireUser(next http.Handler) http.Handler {
	return a.require(entities.RoleUser, "/", next)
}

// RequireAdmin redirects to the admin login when no admin session is present.
func (a *SessionAuth) RequireAdmin(next http.Handler) http.Handler {
	return a.require(entities.RoleAdmin, "/adminlogin", next)
}

func (a *SessionAuth) require(role entities.Role, redirect string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := a.SessionFrom(r)
		if s == nil || s.Role != role {
			http.Redirect(w, r, redirect, http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext retrieves the session stored by the middleware.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
