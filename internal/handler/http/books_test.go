package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// withURLParam attaches a chi route parameter to the request, the way the
// router does when dispatching a parametrised route.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// index
// ─────────────────────────────────────────────

// TestIndex verifies that the homepage lists the aggregated books and passes
// the search term and normalized sort key through to the service.
func TestIndex(t *testing.T) {
	var gotFilter store.Filter
	var gotSort string

	books := &mockBookService{
		listBooksFn: func(_ context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error) {
			gotFilter, gotSort = filter, sortKey
			return []models.AggregatedBook{
				{ISBN: "9780441013593", Title: "Dune", Author: "Frank Herbert", AvgRating: 4.5, ReviewCount: 2},
			}, nil
		},
	}

	h := newTestHandler(t, nil, books, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/?search=dune&sort=bogus", nil), testSession)
	rec := httptest.NewRecorder()

	h.index(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, store.Filter{Search: "dune"}, gotFilter)
	assert.Equal(t, store.SortByRating, gotSort)
	assert.Contains(t, rec.Body.String(), "Dune")
	assert.Contains(t, rec.Body.String(), "Frank Herbert")
}

// ─────────────────────────────────────────────
// addEntry
// ─────────────────────────────────────────────

// TestAddEntry_Success verifies that a valid form submission stores the entry
// under the session user and redirects home.
func TestAddEntry_Success(t *testing.T) {
	var gotEntry models.BookEntry

	books := &mockBookService{
		addEntryFn: func(_ context.Context, entry models.BookEntry) (models.BookEntry, error) {
			gotEntry = entry
			return entry, nil
		},
	}

	form := url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"isbn":      {"9780441013593"},
		"rating":    {"5"},
		"category":  {"Fiction"},
		"date_read": {"2026-03-14"},
		"notes":     {"A classic."},
	}

	h := newTestHandler(t, nil, books, nil)
	rec := httptest.NewRecorder()

	h.addEntry(rec, asUser(formRequest("/add", form), testSession))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, testSession.UserID, gotEntry.UserID)
	assert.Equal(t, 5, gotEntry.Rating)
	require.NotNil(t, gotEntry.DateRead)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *gotEntry.DateRead)
}

// TestAddEntry_ValidationError verifies that a rejected entry re-renders the
// form with the validation message and a 400 status.
func TestAddEntry_ValidationError(t *testing.T) {
	books := &mockBookService{
		addEntryFn: func(_ context.Context, _ models.BookEntry) (models.BookEntry, error) {
			return models.BookEntry{}, service.ErrTitleRequired
		},
	}

	form := url.Values{"author": {"Frank Herbert"}}

	h := newTestHandler(t, nil, books, nil)
	rec := httptest.NewRecorder()

	h.addEntry(rec, asUser(formRequest("/add", form), testSession))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

// ─────────────────────────────────────────────
// parseEntryForm
// ─────────────────────────────────────────────

// TestParseEntryForm_Fallbacks verifies that an unparsable rating falls back
// to 0 and an empty date to nil.
func TestParseEntryForm_Fallbacks(t *testing.T) {
	form := url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"rating":    {"not-a-number"},
		"date_read": {""},
	}

	entry := parseEntryForm(formRequest("/add", form))

	assert.Equal(t, 0, entry.Rating)
	assert.Nil(t, entry.DateRead)
}

// TestParseEntryForm_BadDate verifies that an unparsable date is dropped
// rather than failing the submission.
func TestParseEntryForm_BadDate(t *testing.T) {
	form := url.Values{
		"title":     {"Dune"},
		"author":    {"Frank Herbert"},
		"rating":    {"3"},
		"date_read": {"14/03/2026"},
	}

	entry := parseEntryForm(formRequest("/add", form))

	assert.Equal(t, 3, entry.Rating)
	assert.Nil(t, entry.DateRead)
}

// ─────────────────────────────────────────────
// editEntryForm / deleteEntry ownership
// ─────────────────────────────────────────────

// TestEditEntryForm_NotOwner verifies that another user's entry yields a 403
// instead of the edit form.
func TestEditEntryForm_NotOwner(t *testing.T) {
	books := &mockBookService{
		getEntryFn: func(_ context.Context, entryID string) (models.BookEntry, error) {
			return models.BookEntry{EntryID: entryID, UserID: "someone-else", Title: "Dune"}, nil
		},
	}

	h := newTestHandler(t, nil, books, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/edit/entry-1", nil), testSession)
	req = withURLParam(req, "id", "entry-1")
	rec := httptest.NewRecorder()

	h.editEntryForm(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not your book to edit")
}

// TestEditEntryForm_NotFound verifies that an unknown entry id yields a 404
// before any ownership decision.
func TestEditEntryForm_NotFound(t *testing.T) {
	books := &mockBookService{
		getEntryFn: func(_ context.Context, _ string) (models.BookEntry, error) {
			return models.BookEntry{}, store.ErrBookEntryNotFound
		},
	}

	h := newTestHandler(t, nil, books, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/edit/missing", nil), testSession)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.editEntryForm(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestDeleteEntry_RedirectsToProfile verifies that a successful delete sends
// the user back to their profile.
func TestDeleteEntry_RedirectsToProfile(t *testing.T) {
	var gotActor, gotEntry string

	books := &mockBookService{
		deleteEntryFn: func(_ context.Context, actorID, entryID string) error {
			gotActor, gotEntry = actorID, entryID
			return nil
		},
	}

	h := newTestHandler(t, nil, books, nil)
	req := asUser(formRequest("/delete/entry-1", url.Values{}), testSession)
	req = withURLParam(req, "id", "entry-1")
	rec := httptest.NewRecorder()

	h.deleteEntry(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
	assert.Equal(t, testSession.UserID, gotActor)
	assert.Equal(t, "entry-1", gotEntry)
}

// ─────────────────────────────────────────────
// category
// ─────────────────────────────────────────────

// TestCategory_Unknown verifies that an unknown category still renders the
// page, with the placeholder description and no entries.
func TestCategory_Unknown(t *testing.T) {
	books := &mockBookService{
		categoryReviewsFn: func(_ context.Context, _, _, _ string) ([]models.EntryWithUser, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, nil, books, nil)
	req := asUser(httptest.NewRequest(http.MethodGet, "/category/Cooking", nil), testSession)
	req = withURLParam(req, "categoryName", "Cooking")
	rec := httptest.NewRecorder()

	h.category(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cooking")
	assert.Contains(t, rec.Body.String(), "No description available.")
}
