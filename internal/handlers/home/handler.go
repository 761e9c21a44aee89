package home

import (
	"net/http"
	"primecm/shared/constant"
	"primecm/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/", h.Welcome)
}

// Welcome godoc
// @Summary Welcome message
// @Tags Home
// @Produce json
// @Success 200 {object} response.Message
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, constant.ResponseWelcome)
}
