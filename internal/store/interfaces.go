package store

import (
	"context"

	"github.com/MKhiriev/booknotes/models"
)

// UserRepository is the persistence surface for user accounts.
type UserRepository interface {
	// CreateUser persists a new user record.
	// Returns [ErrUsernameAlreadyExists] when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user by exact (case-sensitive) username.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves a user by canonical id.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile persists username/bio changes for an existing user.
	// Returns [ErrNoUserWasFound] for unknown ids and
	// [ErrUsernameAlreadyExists] when the new username is taken.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, userID string) error
}

// BookRepository is the persistence surface for book review entries and the
// aggregated logical-book view derived from them.
type BookRepository interface {
	// CreateEntry persists a new book entry.
	CreateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)

	// FindEntryByID retrieves one entry by canonical id.
	// Returns [ErrBookEntryNotFound] when no such entry exists.
	FindEntryByID(ctx context.Context, entryID string) (models.BookEntry, error)

	// FindEntries retrieves entries matching the filter, ordered by the sort key.
	FindEntries(ctx context.Context, filter Filter, sortKey string) ([]models.BookEntry, error)

	// FindEntriesByUser retrieves all entries owned by one user, most
	// recently read first.
	FindEntriesByUser(ctx context.Context, userID string) ([]models.BookEntry, error)

	// FindEntriesByISBN retrieves all entries of one logical book, ordered
	// by the sort key.
	FindEntriesByISBN(ctx context.Context, isbn string, sortKey string) ([]models.BookEntry, error)

	// AggregateBooks groups entries matching the filter by logical book
	// (isbn + title + author) and computes per-group average rating, review
	// count and last-reviewed date, ordered by the sort key.
	AggregateBooks(ctx context.Context, filter Filter, sortKey string) ([]models.AggregatedBook, error)

	// UpdateEntry persists changes to an existing entry.
	// Returns [ErrBookEntryNotFound] for unknown ids.
	UpdateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)

	// DeleteEntry removes an entry by canonical id.
	// Returns [ErrBookEntryNotFound] for unknown ids.
	DeleteEntry(ctx context.Context, entryID string) error
}

// MessageRepository is the persistence surface for contact form submissions.
// Messages are write-only: no read path exists in the application.
type MessageRepository interface {
	// CreateMessage persists a contact form submission.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
}
