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

// userColumns is the canonical column order shared by every user query and
// by [scanUser].
var userColumns = []string{"user_id", "username", "password_hash", "bio", "profile_picture", "created_at", "updated_at", "last_login"}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and profile mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record.
//
// The caller is expected to have assigned the canonical id and timestamps;
// the row is inserted exactly as given so both backends behave identically.
//
// Error handling:
//   - UNIQUE violation on username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash, user.Bio, user.ProfilePicture, user.CreatedAt, user.UpdatedAt, user.LastLogin).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByUsername retrieves a user record by exact, case-sensitive
// username match.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "username", username)
}

// FindUserByID retrieves a user record by canonical id.
//
// Error handling mirrors [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *userRepository) findOne(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateProfile persists username and bio changes for an existing user and
// bumps updated_at.
//
// Error handling:
//   - UNIQUE violation on the new username → [ErrUsernameAlreadyExists].
//   - zero rows affected (unknown id) → [ErrNoUserWasFound].
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = time.Now()

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("bio", user.Bio).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: updating user profile")

		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// TouchLastLogin records a successful login timestamp for the user.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("last_login", time.Now()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var lastLogin sql.NullTime

	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.Bio, &user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt, &lastLogin); err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		loginTime := lastLogin.Time
		user.LastLogin = &loginTime
	}

	return user, nil
}
