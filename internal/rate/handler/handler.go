package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fxcache/internal/domain"

	"github.com/shopspring/decimal"
)

type RateService interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	FlushRate(from, to string) (decimal.Decimal, bool, error)
	FlushAll()
	Snapshot() map[domain.RatePair]decimal.Decimal
}

type Handler struct {
	service RateService
}

func NewRateHandler(service RateService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
