package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// TestOwnProfile verifies that the profile page shows the session user's
// record and entries with the owner controls enabled.
func TestOwnProfile(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, Username: "alice", Bio: "reads a lot"}, nil
		},
	}
	books := &mockBookService{
		userEntriesFn: func(_ context.Context, _ string) ([]models.BookEntry, error) {
			return []models.BookEntry{{EntryID: "entry-1", UserID: "user-1", Title: "Dune"}}, nil
		},
	}

	h := newTestHandler(t, auth, books, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/profile", nil), testSession)
	rec := httptest.NewRecorder()

	h.ownProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), "reads a lot")
	assert.Contains(t, rec.Body.String(), "Dune")
}

// TestProfileByID_NotFound verifies that an unknown user id renders the 404
// error page.
func TestProfileByID_NotFound(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/profile/missing", nil), testSession)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.profileByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestEditProfile_Success verifies that a profile edit refreshes the session
// cookie from the updated record and redirects to the profile page.
func TestEditProfile_Success(t *testing.T) {
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, userID, username, bio string) (models.User, error) {
			return models.User{UserID: userID, Username: username, Bio: bio}, nil
		},
		issueSessionFn: func(user models.User) (string, error) {
			return "refreshed." + user.Username, nil
		},
	}

	form := url.Values{
		"username": {"alice2"},
		"bio":      {"still reads a lot"},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.editProfile(rec, asUser(formRequest("/profile/edit", form), testSession))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "refreshed.alice2", cookies[0].Value)
}

// TestEditProfile_UsernameTaken verifies that a conflicting username
// re-renders the form with the inline message and the rejected input kept.
func TestEditProfile_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
		getUserFn: func(_ context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, Username: "alice"}, nil
		},
	}

	form := url.Values{
		"username": {"taken"},
		"bio":      {"reads a lot"},
	}

	h := newTestHandler(t, auth, nil, nil)
	rec := httptest.NewRecorder()

	h.editProfile(rec, asUser(formRequest("/profile/edit", form), testSession))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already taken")
	assert.Contains(t, rec.Body.String(), "taken")
}
