package store

import (
	"github.com/MKhiriev/booknotes/internal/logger"
)

// Storages bundles all repository implementations behind their interfaces
// for injection into the service layer.
type Storages struct {
	UserRepository    UserRepository
	BookRepository    BookRepository
	MessageRepository MessageRepository
}

// NewStorages constructs every repository over the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		BookRepository:    NewBookRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
