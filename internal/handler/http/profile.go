package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
)

func (h *Handler) ownProfile(w http.ResponseWriter, r *http.Request) {
	h.showProfile(w, r, sessionUser(r).UserID)
}

func (h *Handler) profileByID(w http.ResponseWriter, r *http.Request) {
	h.showProfile(w, r, chi.URLParam(r, "id"))
}

// showProfile renders a user's profile page with their entries, most
// recently read first. The owner additionally sees edit and delete controls.
func (h *Handler) showProfile(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	profile, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entries, err := h.services.BookService.UserEntries(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "profile", profilePage{
		page:           h.newPage(r, profile.Username),
		Profile:        profile,
		ProfilePicture: profile.AvatarURL(),
		Entries:        entries,
		IsOwner:        service.CanMutate(sessionUser(r).UserID, profile.UserID),
	})
}

func (h *Handler) editProfileForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.services.AuthService.GetUser(ctx, sessionUser(r).UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "edit_profile", profilePage{
		page:           h.newPage(r, "Edit Profile"),
		Profile:        profile,
		ProfilePicture: profile.AvatarURL(),
	})
}

// editProfile updates the username and bio, then re-issues the session
// cookie from the refreshed record so the navbar identity never goes stale.
func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	bio := r.PostFormValue("bio")

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, sessionUser(r).UserID, username, bio)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTooShort):
			h.renderEditProfileError(w, r, http.StatusBadRequest, "Username must be at least 3 characters", username, bio)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			h.renderEditProfileError(w, r, http.StatusConflict, "Username already taken", username, bio)
			return
		default:
			h.handleError(w, r, err)
			return
		}
	}

	token, err := h.services.AuthService.IssueSession(updatedUser)
	if err != nil {
		log.Err(err).Msg("session token refresh failed")
		h.renderError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func (h *Handler) renderEditProfileError(w http.ResponseWriter, r *http.Request, status int, message, username, bio string) {
	profile, err := h.services.AuthService.GetUser(r.Context(), sessionUser(r).UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	// keep the rejected input in the form
	profile.Username = username
	profile.Bio = bio

	h.render(w, r, status, "edit_profile", profilePage{
		page:           h.newPage(r, "Edit Profile"),
		Profile:        profile,
		ProfilePicture: profile.AvatarURL(),
		Error:          message,
	})
}
