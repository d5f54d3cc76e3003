package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/service"
)

func (h *Handler) contactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact", contactPage{page: h.newPage(r, "Contact Me")})
}

// submitContact stores the message and re-renders the form with a
// confirmation. A storage failure keeps the visitor on the form with an
// inline message instead of an error page.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, err := h.services.MessageService.SubmitMessage(
		ctx,
		r.PostFormValue("fullname"),
		r.PostFormValue("email"),
		r.PostFormValue("message"),
	)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.render(w, r, http.StatusBadRequest, "contact", contactPage{
				page:  h.newPage(r, "Contact Me"),
				Error: "Name, email and message are required.",
			})
			return
		}

		log.Err(err).Msg("saving contact message failed")
		h.render(w, r, http.StatusInternalServerError, "contact", contactPage{
			page:  h.newPage(r, "Contact Me"),
			Error: "Failed to send your message. Please try again.",
		})
		return
	}

	h.render(w, r, http.StatusOK, "contact", contactPage{
		page: h.newPage(r, "Contact Me"),
		Sent: true,
	})
}
