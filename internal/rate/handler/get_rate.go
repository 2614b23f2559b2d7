package handler

import (
	"errors"
	"net/http"
	"strings"

	"fxcache/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GetRateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))

	value, err := h.service.GetRate(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCurrency):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnknownRate):
			writeError(w, http.StatusNotFound, "conversion not possible for this pair")
		default:
			msg := "failed to fetch rate from source"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRate", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusBadGateway, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, GetRateResponse{
		From: from,
		To:   to,
		Rate: value,
	})
}
