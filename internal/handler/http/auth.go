package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
)

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signup", authPage{page: h.newPage(r, "Sign Up")})
}

// signup creates the account and sends the new user to the login page.
// Validation and conflict failures re-render the form with an inline message
// and the username preserved.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTooShort):
			h.render(w, r, http.StatusBadRequest, "signup", authPage{
				page:     h.newPage(r, "Sign Up"),
				Error:    "Username must be at least 3 characters",
				Username: username,
			})
			return
		case errors.Is(err, service.ErrValidation):
			h.render(w, r, http.StatusBadRequest, "signup", authPage{
				page:     h.newPage(r, "Sign Up"),
				Error:    "Username and password are required",
				Username: username,
			})
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			h.render(w, r, http.StatusConflict, "signup", authPage{
				page:     h.newPage(r, "Sign Up"),
				Error:    "Username already taken",
				Username: username,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			h.render(w, r, http.StatusInternalServerError, "signup", authPage{
				page:     h.newPage(r, "Sign Up"),
				Error:    "Something went wrong. Try again?",
				Username: username,
			})
			return
		}
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", authPage{page: h.newPage(r, "Log In")})
}

// login verifies credentials, issues the session cookie and sends the user
// to the homepage. Unknown username and wrong password both come back as a
// 400 with an inline message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			h.render(w, r, http.StatusBadRequest, "login", authPage{
				page:     h.newPage(r, "Log In"),
				Error:    "User not found",
				Username: username,
			})
			return
		case errors.Is(err, service.ErrWrongPassword):
			h.render(w, r, http.StatusBadRequest, "login", authPage{
				page:     h.newPage(r, "Log In"),
				Error:    "Invalid Password",
				Username: username,
			})
			return
		case errors.Is(err, service.ErrValidation):
			h.render(w, r, http.StatusBadRequest, "login", authPage{
				page:     h.newPage(r, "Log In"),
				Error:    "Username and password are required",
				Username: username,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.render(w, r, http.StatusInternalServerError, "login", authPage{
				page:     h.newPage(r, "Log In"),
				Error:    "Login failed. Try again?",
				Username: username,
			})
			return
		}
	}

	token, err := h.services.AuthService.IssueSession(foundUser)
	if err != nil {
		log.Err(err).Msg("session token creation failed")
		h.renderError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
