package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
// Contact messages are append-only; the application never reads them back.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a contact form submission exactly as given; the
// caller assigns the canonical id and timestamp.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(message.TableName()).
		Columns("message_id", "fullname", "email", "message", "created_at").
		Values(message.MessageID, message.FullName, message.Email, message.Message, message.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: building insert query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: inserting message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return message, nil
}
