package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// index renders the homepage: the grouped logical-book listing, filtered by
// the search term and ordered by the requested sort key.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	search := r.URL.Query().Get("search")
	sortKey := store.NormalizeSort(r.URL.Query().Get("sort"))

	books, err := h.services.BookService.ListBooks(ctx, store.Filter{Search: search}, sortKey)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "index", indexPage{
		page:  h.newPage(r, "All Books"),
		Books: books,
	})
}

func (h *Handler) addEntryForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "add_book", entryFormPage{page: h.newPage(r, "Add a Book")})
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry := parseEntryForm(r)
	entry.UserID = sessionUser(r).UserID

	if _, err := h.services.BookService.AddEntry(ctx, entry); err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.render(w, r, http.StatusBadRequest, "add_book", entryFormPage{
				page:  h.newPage(r, "Add a Book"),
				Entry: entry,
				Error: err.Error(),
			})
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// editEntryForm renders the edit form for one entry. Only the owner gets the
// form; everyone else gets a 403 and an unknown id a 404, never the other
// way around.
func (h *Handler) editEntryForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := h.services.BookService.GetEntry(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if !service.CanMutate(sessionUser(r).UserID, entry.UserID) {
		h.renderError(w, r, http.StatusForbidden, "Not your book to edit")
		return
	}

	h.render(w, r, http.StatusOK, "edit_book", entryFormPage{
		page:  h.newPage(r, "Edit Book"),
		Entry: entry,
	})
}

func (h *Handler) editEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry := parseEntryForm(r)
	entry.EntryID = chi.URLParam(r, "id")

	if _, err := h.services.BookService.UpdateEntry(ctx, sessionUser(r).UserID, entry); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			h.render(w, r, http.StatusBadRequest, "edit_book", entryFormPage{
				page:  h.newPage(r, "Edit Book"),
				Entry: entry,
				Error: err.Error(),
			})
			return
		case errors.Is(err, service.ErrForbidden):
			h.renderError(w, r, http.StatusForbidden, "Not your book to edit")
			return
		default:
			h.handleError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.BookService.DeleteEntry(ctx, sessionUser(r).UserID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			h.renderError(w, r, http.StatusForbidden, "Not your book to delete")
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusFound)
}

func (h *Handler) topReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	search := r.URL.Query().Get("search")
	sortKey := store.NormalizeSort(r.URL.Query().Get("sort"))

	reviews, err := h.services.BookService.TopReviews(ctx, search, sortKey)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "top_reviews", reviewsPage{
		page:    h.newPage(r, "Top Reviews"),
		Reviews: reviews,
	})
}

func (h *Handler) bookDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	isbn := chi.URLParam(r, "isbn")
	sortKey := store.NormalizeSort(r.URL.Query().Get("sort"))

	book, reviews, err := h.services.BookService.BookDetail(ctx, isbn, sortKey)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "book_reviews", bookPage{
		page:    h.newPage(r, book.Title),
		Book:    book,
		Reviews: reviews,
	})
}

func (h *Handler) reviewDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	review, err := h.services.BookService.EntryDetail(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "review_detail", reviewDetailPage{
		page:    h.newPage(r, review.Title),
		Review:  review,
		IsOwner: service.CanMutate(sessionUser(r).UserID, review.UserID),
	})
}

// category renders one category's entries. An unknown category name renders
// an empty listing with a placeholder description rather than an error.
func (h *Handler) category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryName := chi.URLParam(r, "categoryName")
	search := r.URL.Query().Get("search")
	sortKey := store.NormalizeSort(r.URL.Query().Get("sort"))

	reviews, err := h.services.BookService.CategoryReviews(ctx, categoryName, search, sortKey)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "category", reviewsPage{
		page:        h.newPage(r, categoryName),
		Reviews:     reviews,
		Category:    categoryName,
		Description: models.DescribeCategory(categoryName),
	})
}

// parseEntryForm builds a book entry from the submitted form values. An
// unparsable rating falls back to the unrated sentinel and an unparsable or
// empty date to nil, mirroring what the forms can legitimately send.
func parseEntryForm(r *http.Request) models.BookEntry {
	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		rating = 0
	}

	var dateRead *time.Time
	if raw := r.PostFormValue("date_read"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			dateRead = &parsed
		}
	}

	return models.BookEntry{
		Title:    r.PostFormValue("title"),
		Author:   r.PostFormValue("author"),
		ISBN:     r.PostFormValue("isbn"),
		Rating:   rating,
		Notes:    r.PostFormValue("notes"),
		DateRead: dateRead,
		Category: r.PostFormValue("category"),
	}
}
