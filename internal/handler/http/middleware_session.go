// Package http implements the HTML transport layer of the application.
// It provides middleware, route handlers and page rendering for the
// server-rendered web UI. Session handling, logging and tracing concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/utils"
	"github.com/MKhiriev/booknotes/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session_token"

// loadSession is an HTTP middleware that restores the session identity from
// the session cookie when one is present and valid.
//
// The middleware never rejects a request: public pages render fine without a
// session, and [Handler.requireAuth] enforces authentication where needed.
// A cookie that fails validation is cleared so the browser stops sending it.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionUser, err := h.services.AuthService.ParseSession(cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("discarding invalid session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithSessionUser(r.Context(), sessionUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth is an HTTP middleware that redirects anonymous visitors to the
// login page. It must run after [Handler.loadSession].
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// setSessionCookie issues the session cookie for a freshly signed token.
// The cookie lifetime matches the token lifetime so both expire together.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.Duration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionUser returns the session identity for the request, or nil for an
// anonymous visitor. Views take the pointer directly.
func sessionUser(r *http.Request) *models.SessionUser {
	if su, ok := utils.GetSessionUserFromContext(r.Context()); ok {
		return &su
	}
	return nil
}
