// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Sort keys recognized by [NormalizeSort]. Any other value falls back to
// [SortByDate].
const (
	// SortByRating orders entries by rating (or aggregated groups by average
	// rating), descending.
	SortByRating = "rating"

	// SortByDate orders entries by date_read (or aggregated groups by
	// last_reviewed), descending, with missing dates sorted last. This is
	// the default sort.
	SortByDate = "date_read"
)

// Filter is the normalized predicate descriptor built from user-supplied
// query parameters. Zero values mean "no constraint"; an entirely zero
// Filter matches every entry.
//
// All filter values reach the database exclusively through bound parameters.
// User input is never interpolated into SQL text, for any backend.
type Filter struct {
	// Search matches entries whose title OR author contains the term as a
	// case-insensitive substring. Leading/trailing whitespace is ignored.
	Search string

	// Category restricts entries to one exact category name.
	Category string

	// Rating restricts entries to one exact rating value. Zero means any
	// rating (zero is the "unrated" sentinel and is never filtered on).
	Rating int
}

// NormalizeSort maps a raw, user-supplied sort value onto a recognized sort
// key. "rating" is kept as-is; every other value (including empty) falls back
// to [SortByDate]. Unrecognized values never produce an error.
func NormalizeSort(raw string) string {
	if raw == SortByRating {
		return SortByRating
	}
	return SortByDate
}

// applyFilter appends WHERE predicates for f to the SELECT builder.
// The search predicate lowercases both column and pattern so the substring
// match is case-insensitive on every backend.
func applyFilter(builder sq.SelectBuilder, f Filter) sq.SelectBuilder {
	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"LOWER(title)": pattern},
			sq.Like{"LOWER(author)": pattern},
		})
	}

	if f.Category != "" {
		builder = builder.Where(sq.Eq{"category": f.Category})
	}

	if f.Rating != 0 {
		builder = builder.Where(sq.Eq{"rating": f.Rating})
	}

	return builder
}

// entryOrderBy returns the ORDER BY clause for flat entry listings.
func entryOrderBy(sortKey string) string {
	if sortKey == SortByRating {
		return "rating DESC"
	}
	return "date_read DESC NULLS LAST"
}

// aggregateOrderBy returns the ORDER BY clause for grouped logical-book
// listings.
func aggregateOrderBy(sortKey string) string {
	if sortKey == SortByRating {
		return "avg_rating DESC"
	}
	return "last_reviewed DESC NULLS LAST"
}
