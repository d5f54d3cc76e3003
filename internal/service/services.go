package service

import (
	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/store"
)

// Services bundles all service implementations behind their interfaces for
// injection into the transport layer.
type Services struct {
	AuthService    AuthService
	BookService    BookService
	MessageService MessageService
}

// NewServices constructs every service over the shared repositories.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Session, logger),
		BookService:    NewBookService(storages.BookRepository, storages.UserRepository, logger),
		MessageService: NewMessageService(storages.MessageRepository, logger),
	}
}
