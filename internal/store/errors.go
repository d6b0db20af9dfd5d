package store

import "errors"

// Sentinel errors returned by repository and object storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the given email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session row does not exist.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCharacterNotFound is returned when an update or delete targets a
	// character id that does not exist.
	ErrCharacterNotFound = errors.New("character was not found")

	// ErrSlugAlreadyExists is returned when an insert or update would give two
	// characters the same slug.
	ErrSlugAlreadyExists = errors.New("character slug already exists")

	// ErrNothingToSave is returned for a save request that carries neither
	// character nor stats fields.
	ErrNothingToSave = errors.New("save request has no fields")
)

// Object storage errors.
var (
	// ErrObjectExists is returned when uploading to a path that is already taken.
	ErrObjectExists = errors.New("object already exists")

	// ErrObjectNotFound is returned when opening a path with no object behind it.
	ErrObjectNotFound = errors.New("object was not found")

	// ErrInvalidObjectPath is returned for empty, absolute or escaping paths.
	ErrInvalidObjectPath = errors.New("invalid object path")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
