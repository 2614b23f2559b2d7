package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type CachedRate struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

type ListRatesResponse struct {
	Rates []CachedRate `json:"rates"`
}

func (h *Handler) ListRates(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.service.Snapshot()

	rates := make([]CachedRate, 0, len(snapshot))
	for pair, value := range snapshot {
		rates = append(rates, CachedRate{
			From: string(pair.From),
			To:   string(pair.To),
			Rate: value,
		})
	}
	// Map iteration order is random; keep the listing stable.
	slices.SortFunc(rates, func(a, b CachedRate) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})

	writeJSON(w, http.StatusOK, ListRatesResponse{Rates: rates})
}
