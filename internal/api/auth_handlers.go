package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"rentwheels/internal/apperr"
	"rentwheels/internal/auth"
	"rentwheels/internal/entities"
	"rentwheels/internal/service"
)

type AuthHandler struct {
	Auth     *service.AuthService
	Sessions *auth.SessionAuth
	View     *Renderer
}

func NewAuthHandler(svc *service.AuthService, sessions *auth.SessionAuth, view *Renderer) *AuthHandler {
	return &AuthHandler{Auth: svc, Sessions: sessions, View: view}
}

// Signup creates the user and logs them straight in. A duplicate phone
// number re-renders the login page with a message, not an error status.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	name := r.FormValue("name")
	phone := r.FormValue("phone")
	password := r.FormValue("password")

	identity, err := h.Auth.Signup(name, phone, password)
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicatePhone) {
			h.View.Render(w, "login.html", PageData{Message: "This phone number is already registered, please log in."})
			return
		}
		log.Printf("signup failed for %s: %v", phone, err)
		h.View.Render(w, "login.html", PageData{Message: "Signup failed, please try again."})
		return
	}

	if err := h.Sessions.SetSession(w, auth.Session{ID: identity.Key(), Role: identity.Role}); err != nil {
		log.Printf("set session after signup: %v", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles POST /login/{type} for both roles. Failures re-render the
// role-appropriate login view with a message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	loginType := mux.Vars(r)["type"]
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	identifier := r.FormValue("identifier")
	password := r.FormValue("password")

	var (
		identity *entities.Identity
		err      error
	)
	switch loginType {
	case "admin":
		identity, err = h.Auth.VerifyAdmin(identifier, password)
	case "user":
		identity, err = h.Auth.VerifyUser(identifier, password)
	default:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err != nil {
		page := "login.html"
		if loginType == "admin" {
			page = "admin-login.html"
		}
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalidCredentials) {
			h.View.Render(w, page, PageData{Message: "Invalid credentials, please try again."})
			return
		}
		log.Printf("login failed for %s (%s): %v", identifier, loginType, err)
		h.View.Render(w, page, PageData{Message: "Login failed, please try again."})
		return
	}

	if err := h.Sessions.SetSession(w, auth.Session{ID: identity.Key(), Role: identity.Role}); err != nil {
		log.Printf("set session after login: %v", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if identity.Role == entities.RoleAdmin {
		http.Redirect(w, r, "/adminhome", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
