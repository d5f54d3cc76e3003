package service

import (
	"context"

	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// fakeUserRepository implements store.UserRepository with overridable
// function fields. Unset methods panic so tests fail loudly on unexpected
// calls.
type fakeUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn      func(ctx context.Context, user models.User) (models.User, error)
	touchLastLoginFn     func(ctx context.Context, userID string) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return f.findUserByUsernameFn(ctx, username)
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return f.findUserByIDFn(ctx, userID)
}

func (f *fakeUserRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	return f.updateProfileFn(ctx, user)
}

func (f *fakeUserRepository) TouchLastLogin(ctx context.Context, userID string) error {
	return f.touchLastLoginFn(ctx, userID)
}

// fakeBookRepository implements store.BookRepository with overridable
// function fields.
type fakeBookRepository struct {
	createEntryFn       func(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)
	findEntryByIDFn     func(ctx context.Context, entryID string) (models.BookEntry, error)
	findEntriesFn       func(ctx context.Context, filter store.Filter, sortKey string) ([]models.BookEntry, error)
	findEntriesByUserFn func(ctx context.Context, userID string) ([]models.BookEntry, error)
	findEntriesByISBNFn func(ctx context.Context, isbn string, sortKey string) ([]models.BookEntry, error)
	aggregateBooksFn    func(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error)
	updateEntryFn       func(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)
	deleteEntryFn       func(ctx context.Context, entryID string) error
}

func (f *fakeBookRepository) CreateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	return f.createEntryFn(ctx, entry)
}

func (f *fakeBookRepository) FindEntryByID(ctx context.Context, entryID string) (models.BookEntry, error) {
	return f.findEntryByIDFn(ctx, entryID)
}

func (f *fakeBookRepository) FindEntries(ctx context.Context, filter store.Filter, sortKey string) ([]models.BookEntry, error) {
	return f.findEntriesFn(ctx, filter, sortKey)
}

func (f *fakeBookRepository) FindEntriesByUser(ctx context.Context, userID string) ([]models.BookEntry, error) {
	return f.findEntriesByUserFn(ctx, userID)
}

func (f *fakeBookRepository) FindEntriesByISBN(ctx context.Context, isbn string, sortKey string) ([]models.BookEntry, error) {
	return f.findEntriesByISBNFn(ctx, isbn, sortKey)
}

func (f *fakeBookRepository) AggregateBooks(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error) {
	return f.aggregateBooksFn(ctx, filter, sortKey)
}

func (f *fakeBookRepository) UpdateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	return f.updateEntryFn(ctx, entry)
}

func (f *fakeBookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	return f.deleteEntryFn(ctx, entryID)
}

// fakeMessageRepository implements store.MessageRepository with an
// overridable function field.
type fakeMessageRepository struct {
	createMessageFn func(ctx context.Context, message models.Message) (models.Message, error)
}

func (f *fakeMessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return f.createMessageFn(ctx, message)
}
