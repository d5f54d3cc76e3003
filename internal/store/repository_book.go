// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/models"
)

// bookColumns is the canonical column order shared by every entry query and
// by [scanBookEntry].
var bookColumns = []string{"entry_id", "user_id", "title", "author", "isbn", "rating", "notes", "date_read", "category", "created_at", "updated_at"}

// bookRepository is the SQL-backed implementation of [BookRepository].
// It handles book entry CRUD and the grouped logical-book aggregation
// against the "books" table.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a new book entry exactly as given; the caller assigns
// the canonical id and timestamps.
func (r *bookRepository) CreateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(entry.TableName()).
		Columns(bookColumns...).
		Values(entry.EntryID, entry.UserID, entry.Title, entry.Author, entry.ISBN, entry.Rating, entry.Notes, entry.DateRead, entry.Category, entry.CreatedAt, entry.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateEntry").Msg("error: building insert query")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateEntry").Msg("error: inserting book entry")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// FindEntryByID retrieves one entry by canonical id.
//
// Error handling:
//   - empty result set → [ErrBookEntryNotFound].
//   - Any other driver-level error → wrapped [ErrScanningRow].
func (r *bookRepository) FindEntryByID(ctx context.Context, entryID string) (models.BookEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(bookColumns...).
		From(models.BookEntry{}.TableName()).
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindEntryByID").Msg("error: building select query")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanBookEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookEntry{}, ErrBookEntryNotFound
		}
		log.Err(err).Str("func", "*bookRepository.FindEntryByID").Msg("error: scanning book entry row")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by the sort key.
// The filter and ordering are produced by the query-builder helpers; every
// user-supplied value is parameter-bound.
func (r *bookRepository) FindEntries(ctx context.Context, filter Filter, sortKey string) ([]models.BookEntry, error) {
	builder := r.db.builder.
		Select(bookColumns...).
		From(models.BookEntry{}.TableName())

	builder = applyFilter(builder, filter)
	builder = builder.OrderBy(entryOrderBy(sortKey))

	return r.queryEntries(ctx, builder, "*bookRepository.FindEntries")
}

// FindEntriesByUser retrieves all entries owned by one user, most recently
// read first.
func (r *bookRepository) FindEntriesByUser(ctx context.Context, userID string) ([]models.BookEntry, error) {
	builder := r.db.builder.
		Select(bookColumns...).
		From(models.BookEntry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(entryOrderBy(SortByDate))

	return r.queryEntries(ctx, builder, "*bookRepository.FindEntriesByUser")
}

// FindEntriesByISBN retrieves all entries of one logical book, ordered by the
// sort key.
func (r *bookRepository) FindEntriesByISBN(ctx context.Context, isbn string, sortKey string) ([]models.BookEntry, error) {
	builder := r.db.builder.
		Select(bookColumns...).
		From(models.BookEntry{}.TableName()).
		Where(sq.Eq{"isbn": isbn}).
		OrderBy(entryOrderBy(sortKey))

	return r.queryEntries(ctx, builder, "*bookRepository.FindEntriesByISBN")
}

// AggregateBooks groups entries matching the filter by logical book and
// computes the per-group rollup in a single GROUP BY query.
//
// The average is computed over all rows of the group, unrated (rating 0)
// entries included, and is returned unrounded; display rounding is applied
// by the service layer so every view shares one definition.
func (r *bookRepository) AggregateBooks(ctx context.Context, filter Filter, sortKey string) ([]models.AggregatedBook, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(
			"isbn",
			"title",
			"author",
			"AVG(rating) AS avg_rating",
			"COUNT(*) AS review_count",
			"MAX(date_read) AS last_reviewed",
		).
		From(models.BookEntry{}.TableName())

	builder = applyFilter(builder, filter)
	builder = builder.
		GroupBy("isbn", "title", "author").
		OrderBy(aggregateOrderBy(sortKey))

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.AggregateBooks").Msg("error: building aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.AggregateBooks").Msg("error: executing aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	aggregates := make([]models.AggregatedBook, 0)
	for rows.Next() {
		var aggregate models.AggregatedBook
		var lastReviewed sql.NullTime

		if err := rows.Scan(&aggregate.ISBN, &aggregate.Title, &aggregate.Author, &aggregate.AvgRating, &aggregate.ReviewCount, &lastReviewed); err != nil {
			log.Err(err).Str("func", "*bookRepository.AggregateBooks").Msg("error: scanning aggregate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if lastReviewed.Valid {
			reviewedTime := lastReviewed.Time
			aggregate.LastReviewed = &reviewedTime
		}

		aggregates = append(aggregates, aggregate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return aggregates, nil
}

// UpdateEntry persists changes to an existing entry and bumps updated_at.
//
// Error handling:
//   - zero rows affected (unknown id) → [ErrBookEntryNotFound].
func (r *bookRepository) UpdateEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	log := logger.FromContext(ctx)

	entry.UpdatedAt = time.Now()

	query, args, err := r.db.builder.
		Update(entry.TableName()).
		Set("title", entry.Title).
		Set("author", entry.Author).
		Set("isbn", entry.ISBN).
		Set("rating", entry.Rating).
		Set("notes", entry.Notes).
		Set("date_read", entry.DateRead).
		Set("category", entry.Category).
		Set("updated_at", entry.UpdatedAt).
		Where(sq.Eq{"entry_id": entry.EntryID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateEntry").Msg("error: building update query")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateEntry").Msg("error: updating book entry")
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.BookEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.BookEntry{}, ErrBookEntryNotFound
	}

	return entry, nil
}

// DeleteEntry removes an entry by canonical id.
//
// Error handling:
//   - zero rows affected (unknown id) → [ErrBookEntryNotFound].
func (r *bookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.BookEntry{}.TableName()).
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteEntry").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteEntry").Msg("error: deleting book entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookEntryNotFound
	}

	return nil
}

func (r *bookRepository) queryEntries(ctx context.Context, builder sq.SelectBuilder, caller string) ([]models.BookEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error: executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.BookEntry, 0)
	for rows.Next() {
		entry, err := scanBookEntry(rows)
		if err != nil {
			log.Err(err).Str("func", caller).Msg("error: scanning book entry rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func scanBookEntry(row rowScanner) (models.BookEntry, error) {
	var entry models.BookEntry
	var dateRead sql.NullTime

	if err := row.Scan(&entry.EntryID, &entry.UserID, &entry.Title, &entry.Author, &entry.ISBN, &entry.Rating, &entry.Notes, &dateRead, &entry.Category, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return models.BookEntry{}, err
	}

	if dateRead.Valid {
		readTime := dateRead.Time
		entry.DateRead = &readTime
	}

	return entry, nil
}
