// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

func credentialsForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a successful registration redirects the
// new user to the login page.
func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: "user-1", Username: username}, nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.signup(rec, formRequest("/signup", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

// TestSignup_UsernameTooShort verifies that a too-short username re-renders
// the form with the inline message and a 400 status.
func TestSignup_UsernameTooShort(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrUsernameTooShort
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.signup(rec, formRequest("/signup", credentialsForm("al", "secret")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username must be at least 3 characters")
}

// TestSignup_UsernameTaken verifies that a duplicate username re-renders the
// form with the inline message and a 409 status.
func TestSignup_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.signup(rec, formRequest("/signup", credentialsForm("alice", "secret")))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already taken")
}

// TestSignup_StorageFailure verifies that an unexpected error keeps the user
// on the form with a generic retry message.
func TestSignup_StorageFailure(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.signup(rec, formRequest("/signup", credentialsForm("alice", "secret")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong. Try again?")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials produce the session
// cookie and a redirect to the homepage.
func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: "user-1", Username: username}, nil
		},
		issueSessionFn: func(_ models.User) (string, error) {
			return "signed.jwt.token", nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.login(rec, formRequest("/login", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// TestLogin_UnknownUser verifies that an unknown username yields a 400 with
// the inline message.
func TestLogin_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.login(rec, formRequest("/login", credentialsForm("nobody", "secret")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

// TestLogin_WrongPassword verifies that a bad password yields a 400 with the
// inline message and preserves the typed username.
func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.login(rec, formRequest("/login", credentialsForm("alice", "wrong")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Password")
	assert.Contains(t, rec.Body.String(), "alice")
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout verifies that logging out expires the session cookie and
// redirects to the login page.
func TestLogout(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)
	rec := httptest.NewRecorder()

	h.logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
