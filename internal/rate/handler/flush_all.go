package handler

import (
	"net/http"
)

func (h *Handler) FlushAll(w http.ResponseWriter, _ *http.Request) {
	h.service.FlushAll()
	w.WriteHeader(http.StatusNoContent)
}
