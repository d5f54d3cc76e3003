package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/models"
)

// messageService is the concrete implementation of [MessageService].
type messageService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessageService constructs a [MessageService] wired to the given
// [store.MessageRepository].
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// SubmitMessage validates and persists a contact form submission. All three
// fields are required; the canonical id and timestamp are assigned here.
func (m *messageService) SubmitMessage(ctx context.Context, fullName, email, body string) (models.Message, error) {
	log := logger.FromContext(ctx)

	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if fullName == "" || email == "" || body == "" {
		return models.Message{}, ErrMessageIncomplete
	}

	message := models.Message{
		MessageID: uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Message:   body,
		CreatedAt: time.Now(),
	}

	savedMessage, err := m.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("email", email).Msg("message creation ended with error")
		return models.Message{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	return savedMessage, nil
}
