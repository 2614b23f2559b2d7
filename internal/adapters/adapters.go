package adapters

import (
	"context"
	"fxcache/internal/domain"

	"github.com/shopspring/decimal"
)

type RateFetcher interface {
	FetchRate(ctx context.Context, from, to domain.Code) (decimal.Decimal, error)
}
