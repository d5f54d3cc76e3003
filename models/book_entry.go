package models

import "time"

// DefaultCategory is assigned to entries created without an explicit category.
const DefaultCategory = "Uncategorized"

// BookEntry is one user's single review/reading record of a book.
// Entries sharing the same ISBN form a "logical book": the same physical
// book reviewed by many users, one row per reviewer.
type BookEntry struct {
	// EntryID is the canonical opaque identifier of the entry (UUID string).
	EntryID string `json:"-"`

	// UserID references the owning user. Only the owner may edit or delete
	// the entry.
	UserID string `json:"-"`

	// Title of the reviewed book.
	Title string `json:"title"`

	// Author of the reviewed book.
	Author string `json:"author"`

	// ISBN is the grouping key tying reviews of the same book together.
	// There is no referential integrity behind it: two entries with the same
	// ISBN but different title/author are never reconciled.
	ISBN string `json:"isbn"`

	// Rating is an integer 1–5. Zero is the "unrated" sentinel stored when
	// the form field was absent or invalid.
	Rating int `json:"rating"`

	// Notes is the reviewer's free-text commentary.
	Notes string `json:"notes"`

	// DateRead is when the user finished the book. Nil when not specified.
	DateRead *time.Time `json:"date_read,omitempty"`

	// Category is one of the fixed categories listed in [Categories],
	// defaulting to [DefaultCategory].
	Category string `json:"category"`

	// CreatedAt is the timestamp when the entry was added.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the BookEntry model.
func (b BookEntry) TableName() string {
	return "books"
}

// Categories is the fixed list of recognized book categories, in display order.
var Categories = []string{
	"Fiction",
	"Non-Fiction",
	"Mystery-Thriller",
	"Science Fiction",
	"Fantasy",
	"Romance",
	"Horror",
	"Historical",
	"Young Adult (YA)",
	"Biography",
	"Self-Help",
	"Poetry",
	"Childrens Books",
	"Graphic Novels",
}

// CategoryDescriptions maps each fixed category to the short description
// shown on its listing page.
var CategoryDescriptions = map[string]string{
	"Fiction":          "Imaginary stories and narratives.",
	"Non-Fiction":      "Fact-based books about real events, people, or ideas.",
	"Mystery-Thriller": "Suspenseful stories involving crime, puzzles, or danger.",
	"Science Fiction":  "Futuristic or speculative stories about technology, space, or alternate realities.",
	"Fantasy":          "Stories with magic, mythical creatures, and imaginary worlds.",
	"Romance":          "Books centered around love and relationships.",
	"Horror":           "Stories designed to scare or unsettle readers.",
	"Historical":       "Books set in or about the past, whether fiction or non-fiction.",
	"Young Adult (YA)": "Books targeted at teenagers, often with coming-of-age themes.",
	"Biography":        "Stories about real peoples lives.",
	"Self-Help":        "Books offering advice and strategies for personal growth.",
	"Poetry":           "Collections of poems expressing emotions and ideas.",
	"Childrens Books":  "Books written for young readers.",
	"Graphic Novels":   "Illustrated stories, including comics and manga.",
}

// KnownCategory reports whether name is one of the fixed categories or the
// default.
func KnownCategory(name string) bool {
	if name == DefaultCategory {
		return true
	}
	_, ok := CategoryDescriptions[name]
	return ok
}

// DescribeCategory returns the description for a category name, or a
// placeholder for unknown categories.
func DescribeCategory(name string) string {
	if description, ok := CategoryDescriptions[name]; ok {
		return description
	}
	return "No description available."
}
