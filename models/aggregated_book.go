package models

import "time"

// AggregatedBook is the derived summary over all entries of one logical book
// (all rows sharing an ISBN). It is never persisted; it is computed either by
// a GROUP BY query or by the service-layer aggregator over an entry slice, with one
// canonical definition used everywhere:
//
//	avg_rating    = mean over ALL entries, including unrated (rating 0) rows,
//	                rounded to one decimal for display
//	review_count  = number of entries
//	last_reviewed = max date_read, treating nil dates as earlier than any
//	                real date
type AggregatedBook struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`

	// AvgRating is the mean rating rounded to one decimal place.
	// Zero when the group is empty.
	AvgRating float64 `json:"avg_rating"`

	// ReviewCount is the number of entries in the group.
	ReviewCount int `json:"review_count"`

	// LastReviewed is the most recent date_read in the group.
	// Nil when no entry carries a date.
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
}

// EntryWithUser pairs one book entry with its reviewer's public profile data
// and the aggregate of the entry's logical book. It backs the top-reviews,
// category and review-detail views, where entries from many users are listed
// together.
type EntryWithUser struct {
	BookEntry

	// Username of the reviewer, or "Unknown" when the owning account no
	// longer resolves.
	Username string `json:"username"`

	// ProfilePicture is the reviewer's avatar URL (generated fallback
	// included).
	ProfilePicture string `json:"profile_picture"`

	// Bio of the reviewer, shown on the review detail page.
	Bio string `json:"bio"`

	// AvgRating and ReviewCount are the aggregate of the entry's logical
	// book, computed with the canonical definition of [AggregatedBook].
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}
