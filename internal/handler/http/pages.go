package http

import "net/http"

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", h.newPage(r, "About"))
}

// stillWorkingOnIt backs the privacy and terms links until those pages get
// real content.
func (h *Handler) stillWorkingOnIt(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "still_working_on_it", h.newPage(r, "Still Working On It"))
}
