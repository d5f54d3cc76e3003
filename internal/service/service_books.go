package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// bookService is the concrete implementation of [BookService].
// It owns entry validation, ownership checks and the enrichment of entries
// with reviewer identity and per-book rollups.
type bookService struct {
	bookRepository store.BookRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewBookService constructs a [BookService] wired to the given repositories.
func NewBookService(bookRepository store.BookRepository, userRepository store.UserRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// AddEntry validates and persists a new review entry.
//
// The canonical id, timestamps and default category are assigned here so the
// repositories insert rows exactly as given on both backends.
func (b *bookService) AddEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	log := logger.FromContext(ctx)

	if err := validateEntry(&entry); err != nil {
		return models.BookEntry{}, err
	}

	now := time.Now()
	entry.EntryID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	createdEntry, err := b.bookRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("title", entry.Title).Msg("entry creation ended with error")
		return models.BookEntry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return createdEntry, nil
}

// GetEntry retrieves one entry by canonical id.
func (b *bookService) GetEntry(ctx context.Context, entryID string) (models.BookEntry, error) {
	entry, err := b.bookRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		return models.BookEntry{}, fmt.Errorf("entry search by id failed: %w", err)
	}

	return entry, nil
}

// EntryDetail retrieves one entry together with its reviewer's display
// identity and the rollup of the logical book it belongs to.
func (b *bookService) EntryDetail(ctx context.Context, entryID string) (models.EntryWithUser, error) {
	log := logger.FromContext(ctx)

	entry, err := b.bookRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		return models.EntryWithUser{}, fmt.Errorf("entry search by id failed: %w", err)
	}

	reviewer, err := b.userRepository.FindUserByID(ctx, entry.UserID)
	if err != nil {
		log.Err(err).Str("entryID", entryID).Msg("reviewer lookup failed")
		return models.EntryWithUser{}, fmt.Errorf("reviewer lookup failed: %w", err)
	}

	siblings, err := b.bookRepository.FindEntriesByISBN(ctx, entry.ISBN, store.SortByDate)
	if err != nil {
		return models.EntryWithUser{}, fmt.Errorf("sibling entry lookup failed: %w", err)
	}
	rollup := Aggregate(siblings)

	return models.EntryWithUser{
		BookEntry:      entry,
		Username:       reviewer.Username,
		ProfilePicture: reviewer.AvatarURL(),
		Bio:            reviewer.Bio,
		AvgRating:      rollup.AvgRating,
		ReviewCount:    rollup.ReviewCount,
	}, nil
}

// UpdateEntry validates and persists changes to an existing entry.
//
// The stored entry is fetched first: an unknown id surfaces as a wrapped
// [store.ErrBookEntryNotFound] before any ownership check, and an actor who
// does not own the entry gets [ErrForbidden]. Owner, id and creation time
// always survive the update.
func (b *bookService) UpdateEntry(ctx context.Context, actorID string, entry models.BookEntry) (models.BookEntry, error) {
	log := logger.FromContext(ctx)

	existing, err := b.bookRepository.FindEntryByID(ctx, entry.EntryID)
	if err != nil {
		return models.BookEntry{}, fmt.Errorf("entry search by id failed: %w", err)
	}

	if !CanMutate(actorID, existing.UserID) {
		log.Warn().
			Str("actorID", actorID).
			Str("ownerID", existing.UserID).
			Str("entryID", entry.EntryID).
			Msg("entry update denied")
		return models.BookEntry{}, ErrForbidden
	}

	if err := validateEntry(&entry); err != nil {
		return models.BookEntry{}, err
	}

	entry.UserID = existing.UserID
	entry.CreatedAt = existing.CreatedAt

	updatedEntry, err := b.bookRepository.UpdateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("entryID", entry.EntryID).Msg("entry update ended with error")
		return models.BookEntry{}, fmt.Errorf("entry update ended with error: %w", err)
	}

	return updatedEntry, nil
}

// DeleteEntry removes an entry after an ownership check. Error semantics
// mirror [bookService.UpdateEntry].
func (b *bookService) DeleteEntry(ctx context.Context, actorID, entryID string) error {
	log := logger.FromContext(ctx)

	existing, err := b.bookRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("entry search by id failed: %w", err)
	}

	if !CanMutate(actorID, existing.UserID) {
		log.Warn().
			Str("actorID", actorID).
			Str("ownerID", existing.UserID).
			Str("entryID", entryID).
			Msg("entry deletion denied")
		return ErrForbidden
	}

	if err := b.bookRepository.DeleteEntry(ctx, entryID); err != nil {
		log.Err(err).Str("entryID", entryID).Msg("entry deletion ended with error")
		return fmt.Errorf("entry deletion ended with error: %w", err)
	}

	return nil
}

// ListBooks returns the grouped logical-book listing matching the filter.
// Average ratings come back from the database unrounded and are rounded here
// so every view shares one definition.
func (b *bookService) ListBooks(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error) {
	aggregates, err := b.bookRepository.AggregateBooks(ctx, filter, sortKey)
	if err != nil {
		return nil, fmt.Errorf("book aggregation failed: %w", err)
	}

	for i := range aggregates {
		aggregates[i].AvgRating = roundRating(aggregates[i].AvgRating)
	}

	return aggregates, nil
}

// TopReviews returns all five-star entries matching the search term,
// enriched with reviewer identity and per-book rollups. When sorting by
// rating the enriched slice is reordered by average rating, since every flat
// entry already ties at five stars.
func (b *bookService) TopReviews(ctx context.Context, search, sortKey string) ([]models.EntryWithUser, error) {
	entries, err := b.bookRepository.FindEntries(ctx, store.Filter{Rating: 5, Search: search}, sortKey)
	if err != nil {
		return nil, fmt.Errorf("top review lookup failed: %w", err)
	}

	enriched, err := b.enrichEntries(ctx, entries)
	if err != nil {
		return nil, err
	}

	if sortKey == store.SortByRating {
		sort.SliceStable(enriched, func(i, j int) bool {
			return enriched[i].AvgRating > enriched[j].AvgRating
		})
	}

	return enriched, nil
}

// CategoryReviews returns all entries of one category matching the search
// term, enriched with reviewer identity and per-book rollups.
func (b *bookService) CategoryReviews(ctx context.Context, category, search, sortKey string) ([]models.EntryWithUser, error) {
	entries, err := b.bookRepository.FindEntries(ctx, store.Filter{Category: category, Search: search}, sortKey)
	if err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}

	return b.enrichEntries(ctx, entries)
}

// BookDetail returns the rollup and all enriched entries of one logical
// book. An ISBN with no entries surfaces as [store.ErrNoBookWasFound].
func (b *bookService) BookDetail(ctx context.Context, isbn, sortKey string) (models.AggregatedBook, []models.EntryWithUser, error) {
	entries, err := b.bookRepository.FindEntriesByISBN(ctx, isbn, sortKey)
	if err != nil {
		return models.AggregatedBook{}, nil, fmt.Errorf("entry search by isbn failed: %w", err)
	}
	if len(entries) == 0 {
		return models.AggregatedBook{}, nil, store.ErrNoBookWasFound
	}

	enriched, err := b.enrichEntries(ctx, entries)
	if err != nil {
		return models.AggregatedBook{}, nil, err
	}

	return Aggregate(entries), enriched, nil
}

// UserEntries returns all entries owned by one user, most recently read
// first.
func (b *bookService) UserEntries(ctx context.Context, userID string) ([]models.BookEntry, error) {
	entries, err := b.bookRepository.FindEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("entry search by user failed: %w", err)
	}

	return entries, nil
}

// enrichEntries joins reviewer identity and per-book rollups onto a slice of
// entries. Lookups are memoized per user and per ISBN so each reviewer and
// each logical book is fetched once per call.
func (b *bookService) enrichEntries(ctx context.Context, entries []models.BookEntry) ([]models.EntryWithUser, error) {
	log := logger.FromContext(ctx)

	users := make(map[string]models.User)
	rollups := make(map[string]models.AggregatedBook)

	enriched := make([]models.EntryWithUser, 0, len(entries))
	for _, entry := range entries {
		reviewer, ok := users[entry.UserID]
		if !ok {
			var err error
			reviewer, err = b.userRepository.FindUserByID(ctx, entry.UserID)
			if err != nil {
				log.Err(err).Str("entryID", entry.EntryID).Msg("reviewer lookup failed")
				return nil, fmt.Errorf("reviewer lookup failed: %w", err)
			}
			users[entry.UserID] = reviewer
		}

		rollup, ok := rollups[entry.ISBN]
		if !ok {
			siblings, err := b.bookRepository.FindEntriesByISBN(ctx, entry.ISBN, store.SortByDate)
			if err != nil {
				return nil, fmt.Errorf("sibling entry lookup failed: %w", err)
			}
			rollup = Aggregate(siblings)
			rollups[entry.ISBN] = rollup
		}

		enriched = append(enriched, models.EntryWithUser{
			BookEntry:      entry,
			Username:       reviewer.Username,
			ProfilePicture: reviewer.AvatarURL(),
			Bio:            reviewer.Bio,
			AvgRating:      rollup.AvgRating,
			ReviewCount:    rollup.ReviewCount,
		})
	}

	return enriched, nil
}

// validateEntry normalizes an entry in place and reports the first
// validation failure. An empty category falls back to the default.
func validateEntry(entry *models.BookEntry) error {
	entry.Title = strings.TrimSpace(entry.Title)
	entry.Author = strings.TrimSpace(entry.Author)
	entry.ISBN = strings.TrimSpace(entry.ISBN)
	entry.Category = strings.TrimSpace(entry.Category)

	if entry.Title == "" {
		return ErrTitleRequired
	}
	if entry.Author == "" {
		return ErrAuthorRequired
	}
	if entry.Rating < 0 || entry.Rating > 5 {
		return ErrRatingOutOfRange
	}
	if entry.Category == "" {
		entry.Category = models.DefaultCategory
	}
	if !models.KnownCategory(entry.Category) {
		return ErrUnknownCategory
	}

	return nil
}
