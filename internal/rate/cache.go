package rate

import (
	"context"
	"errors"
	"maps"
	"sync"

	"fxcache/internal/adapters"
	"fxcache/internal/domain"
	"fxcache/internal/metrics"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Cache maps ordered currency pairs to rates, resolving misses through a
// RateFetcher. One mutex guards the map for the full duration of every
// operation, fetch included: concurrent callers for a missing key trigger
// exactly one fetch, the rest observe the populated entry. Entries never
// expire on their own; they leave only through FlushRate/FlushRates.
type Cache struct {
	fetcher adapters.RateFetcher
	metrics *metrics.Metrics

	mu    sync.Mutex
	rates map[domain.RatePair]decimal.Decimal
}

func NewCache(fetcher adapters.RateFetcher, m *metrics.Metrics) *Cache {
	return &Cache{
		fetcher: fetcher,
		metrics: m,
		rates:   make(map[domain.RatePair]decimal.Decimal),
	}
}

// GetRate returns the cached rate for from/to, fetching it first on a miss.
// from/to accept any form domain.Normalize accepts. A failed fetch leaves
// the cache untouched, so the next call for the pair fetches again.
func (c *Cache) GetRate(ctx context.Context, from, to any) (decimal.Decimal, error) {
	pair, err := normalizePair(from, to)
	if err != nil {
		c.countFailure(err)
		return decimal.Decimal{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.rates[pair]; ok {
		if c.metrics != nil {
			c.metrics.CacheHitsTotal.Inc()
		}
		return value, nil
	}

	if c.metrics != nil {
		c.metrics.CacheMissesTotal.Inc()
	}
	value, err := c.fetcher.FetchRate(ctx, pair.From, pair.To)
	if err != nil {
		c.countFailure(err)
		return decimal.Decimal{}, err
	}

	c.rates[pair] = value
	logrus.Debugf("Cached rate %s for pair %s", value, pair)
	return value, nil
}

// FlushRate removes the entry for from/to and returns the removed value.
// The bool reports whether an entry existed.
func (c *Cache) FlushRate(from, to any) (decimal.Decimal, bool, error) {
	pair, err := normalizePair(from, to)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.rates[pair]
	if ok {
		delete(c.rates, pair)
	}
	return value, ok, nil
}

// FlushRates drops every cached entry.
func (c *Cache) FlushRates() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates = make(map[domain.RatePair]decimal.Decimal)
}

// Rates returns a snapshot copy of the mapping. Mutating it does not
// touch cache state.
func (c *Cache) Rates() map[domain.RatePair]decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.rates)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rates)
}

func (c *Cache) countFailure(err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.FetchFailuresTotal.WithLabelValues(failureKind(err)).Inc()
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, domain.ErrUnknownRate):
		return "unknown_rate"
	default:
		return "fetch_error"
	}
}

func normalizePair(from, to any) (domain.RatePair, error) {
	fromCode, err := domain.Normalize(from)
	if err != nil {
		return domain.RatePair{}, err
	}
	toCode, err := domain.Normalize(to)
	if err != nil {
		return domain.RatePair{}, err
	}
	return domain.RatePair{From: fromCode, To: toCode}, nil
}
