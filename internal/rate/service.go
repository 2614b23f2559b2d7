package rate

import (
	"context"
	"fxcache/internal/domain"

	"github.com/shopspring/decimal"
)

type Service struct {
	cache *Cache
}

func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

func (s *Service) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	return s.cache.GetRate(ctx, from, to)
}

func (s *Service) FlushRate(from, to string) (decimal.Decimal, bool, error) {
	return s.cache.FlushRate(from, to)
}

func (s *Service) FlushAll() {
	s.cache.FlushRates()
}

func (s *Service) Snapshot() map[domain.RatePair]decimal.Decimal {
	return s.cache.Rates()
}
