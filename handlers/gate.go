package handlers

import (
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"
)

// SessionCookie carries the dashboard session token.
const SessionCookie = "dashboard_session"

// Authenticator gates the owner dashboard. The shipped implementation is a
// shared-secret placeholder; a deployment that needs real authentication
// swaps this in main.
type Authenticator interface {
	// Login checks a password and returns a session token on success.
	Login(password string) (token string, ok bool)
	// Valid reports whether a session token is active.
	Valid(token string) bool
	// Logout revokes a session token.
	Logout(token string)
}

// PasswordGate authenticates against a single static password and keeps
// issued session tokens in memory. Not a security boundary: the password
// ships in plain configuration and sessions die with the process.
type PasswordGate struct {
	password string

	mu       sync.Mutex
	sessions map[string]struct{}
}

// NewPasswordGate returns a gate for the given shared secret.
func NewPasswordGate(password string) *PasswordGate {
	return &PasswordGate{
		password: password,
		sessions: make(map[string]struct{}),
	}
}

func (g *PasswordGate) Login(password string) (string, bool) {
	if password != g.password {
		return "", false
	}
	token := security.RandomString(32)
	g.mu.Lock()
	g.sessions[token] = struct{}{}
	g.mu.Unlock()
	return token, true
}

func (g *PasswordGate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	_, ok := g.sessions[token]
	g.mu.Unlock()
	return ok
}

func (g *PasswordGate) Logout(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// sessionValid reports whether the request carries an active dashboard
// session.
func sessionValid(gate Authenticator, r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return false
	}
	return gate.Valid(cookie.Value)
}

// RequireGate wraps a dashboard handler, bouncing unauthenticated requests
// to the login view.
func RequireGate(gate Authenticator, next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !sessionValid(gate, e.Request) {
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/?dashboard=true")
				return e.String(http.StatusUnauthorized, "")
			}
			return e.Redirect(http.StatusFound, "/?dashboard=true")
		}
		return next(e)
	}
}

// HandleDashboardLogin checks the submitted password and starts a session.
// Route: POST /dashboard/login
func HandleDashboardLogin(gate Authenticator) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		token, ok := gate.Login(e.Request.FormValue("password"))
		if !ok {
			SetToast(e, "error", "Incorrect password. Please try again.")
			return e.Redirect(http.StatusFound, "/?dashboard=true&failed=1")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		SetToast(e, "success", "Welcome to the dashboard!")
		return e.Redirect(http.StatusFound, "/?dashboard=true")
	}
}

// HandleDashboardLogout revokes the session and returns to the public site.
// Route: POST /dashboard/logout
func HandleDashboardLogout(gate Authenticator) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if cookie, err := e.Request.Cookie(SessionCookie); err == nil {
			gate.Logout(cookie.Value)
		}
		http.SetCookie(e.Response, &http.Cookie{
			Name:   SessionCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.Redirect(http.StatusFound, "/")
	}
}
