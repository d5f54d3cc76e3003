package http

import (
	"fmt"
	"html/template"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/web"
)

// Handler owns the HTTP transport layer: routing, middleware, session cookie
// handling and page rendering.
type Handler struct {
	services *service.Services

	sessionCfg config.Session
	templates  *template.Template

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler, parsing the embedded page templates
// up front so a broken template fails at startup instead of on first render.
func NewHandler(services *service.Services, sessionCfg config.Session, logger *logger.Logger) (*Handler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		sessionCfg: sessionCfg,
		templates:  templates,
		logger:     logger,
	}, nil
}
