package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/booknotes/internal/logger"
)

// render executes the named page template into a buffer first, so a template
// failure mid-render never leaks a half-written page to the client.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError renders the shared error page with the given status and
// message.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, "error", errorPage{
		page:    h.newPage(r, "Error"),
		Status:  status,
		Message: message,
	})
}

// handleError maps err onto an HTTP status via the error-status table and
// renders the error page. Internal errors never leak their message.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")

	status := statusFromError(err)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	h.renderError(w, r, status, message)
}
