package http

import (
	"net/http"

	"github.com/MKhiriev/booknotes/models"
)

// page carries the fields every template needs: the tab title, the session
// identity for the navbar (nil for anonymous visitors) and the current
// search term so the search box keeps its value.
type page struct {
	Title  string
	User   *models.SessionUser
	Search string
	Sort   string
}

func (h *Handler) newPage(r *http.Request, title string) page {
	return page{
		Title:  title,
		User:   sessionUser(r),
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
	}
}

type authPage struct {
	page

	Error    string
	Username string
}

type indexPage struct {
	page

	Books []models.AggregatedBook
}

type entryFormPage struct {
	page

	Entry models.BookEntry
	Error string
}

type reviewsPage struct {
	page

	Reviews []models.EntryWithUser

	// Category pages only.
	Category    string
	Description string
}

type bookPage struct {
	page

	Book    models.AggregatedBook
	Reviews []models.EntryWithUser
}

type reviewDetailPage struct {
	page

	Review  models.EntryWithUser
	IsOwner bool
}

type profilePage struct {
	page

	Profile        models.User
	ProfilePicture string
	Entries        []models.BookEntry
	IsOwner        bool
	Error          string
}

type contactPage struct {
	page

	Sent  bool
	Error string
}

type errorPage struct {
	page

	Status  int
	Message string
}
