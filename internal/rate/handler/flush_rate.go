package handler

import (
	"errors"
	"net/http"
	"strings"

	"fxcache/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type FlushRateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

func (h *Handler) FlushRate(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))

	value, ok, err := h.service.FlushRate(from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to flush rate")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "rate not cached")
		return
	}

	writeJSON(w, http.StatusOK, FlushRateResponse{
		From: from,
		To:   to,
		Rate: value,
	})
}
