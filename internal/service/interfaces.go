package service

import (
	"context"

	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// AuthService handles user accounts and session tokens: registration,
// credential verification, profile mutation and the session token lifecycle.
type AuthService interface {
	// Register creates a new account from a username and a plain-text
	// password. The password is hashed before storage; the plain text is
	// never persisted.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Authenticate verifies credentials and records the login time.
	// Returns [store.ErrNoUserWasFound] for an unknown username and
	// [ErrWrongPassword] for a bad password; callers render both the same
	// way.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// GetUser retrieves a user by canonical id.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile changes the username and bio of the given user and
	// returns the refreshed record. Callers must re-issue the session token
	// from the returned user so the session payload never goes stale.
	UpdateProfile(ctx context.Context, userID, username, bio string) (models.User, error)

	// IssueSession signs a session token carrying the user's display
	// identity.
	IssueSession(user models.User) (string, error)

	// ParseSession validates a raw session token and returns the identity it
	// carries. Any failure is normalized to [ErrSessionInvalid].
	ParseSession(tokenString string) (models.SessionUser, error)
}

// BookService handles book review entries and every read model derived from
// them: flat listings, per-book rollups and enriched review views.
type BookService interface {
	// AddEntry validates and persists a new review entry for the acting
	// user, assigning the canonical id, default category and timestamps.
	AddEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)

	// GetEntry retrieves one entry by canonical id.
	GetEntry(ctx context.Context, entryID string) (models.BookEntry, error)

	// EntryDetail retrieves one entry enriched with its reviewer's display
	// identity and the rollup of the logical book it belongs to.
	EntryDetail(ctx context.Context, entryID string) (models.EntryWithUser, error)

	// UpdateEntry validates and persists changes to an existing entry.
	// Returns [ErrForbidden] when actorID does not own the entry.
	UpdateEntry(ctx context.Context, actorID string, entry models.BookEntry) (models.BookEntry, error)

	// DeleteEntry removes an entry. Returns [ErrForbidden] when actorID
	// does not own it.
	DeleteEntry(ctx context.Context, actorID, entryID string) error

	// ListBooks returns the grouped logical-book listing matching the
	// filter, with display-rounded average ratings.
	ListBooks(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error)

	// TopReviews returns all five-star entries matching the search term,
	// enriched with reviewer identity and per-book rollups.
	TopReviews(ctx context.Context, search, sortKey string) ([]models.EntryWithUser, error)

	// CategoryReviews returns all entries of one category matching the
	// search term, enriched with reviewer identity and per-book rollups.
	CategoryReviews(ctx context.Context, category, search, sortKey string) ([]models.EntryWithUser, error)

	// BookDetail returns the rollup and all enriched entries of one logical
	// book.
	BookDetail(ctx context.Context, isbn, sortKey string) (models.AggregatedBook, []models.EntryWithUser, error)

	// UserEntries returns all entries owned by one user, most recently read
	// first.
	UserEntries(ctx context.Context, userID string) ([]models.BookEntry, error)
}

// MessageService handles contact form submissions.
type MessageService interface {
	// SubmitMessage validates and persists a contact form submission.
	SubmitMessage(ctx context.Context, fullName, email, body string) (models.Message, error)
}
