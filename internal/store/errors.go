package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user (or rename an existing one) fails because another user with the
	// same username already exists in the database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookEntryNotFound is returned when a query, update or delete targets
	// a book entry that does not exist in the database. Callers must keep this
	// distinct from ownership failures: unknown id means not-found, a known id
	// owned by someone else means forbidden.
	ErrBookEntryNotFound = errors.New("book entry was not found")

	// ErrNoBookWasFound is returned when no entry carries the requested ISBN,
	// i.e. the logical book is unknown.
	ErrNoBookWasFound = errors.New("no book was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading a single result row into a
	// model fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating or reading a multi-row
	// result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
