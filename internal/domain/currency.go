package domain

import (
	"fmt"
	"strings"
)

// Code is a normalized ISO 4217 currency code: three uppercase ASCII letters.
type Code string

func (c Code) String() string { return string(c) }

// Currency is the richer structured form a caller may hand us instead of a raw code.
type Currency struct {
	Code Code
	Name string
}

// Normalize turns a currency-like input into a canonical Code.
// Accepted forms: Code, string, Currency, *Currency. Normalization is
// deterministic and case-insensitive: " usd " and "USD" yield the same Code.
func Normalize(input any) (Code, error) {
	switch v := input.(type) {
	case Code:
		return normalizeRaw(string(v))
	case string:
		return normalizeRaw(v)
	case Currency:
		return normalizeRaw(string(v.Code))
	case *Currency:
		if v == nil {
			return "", fmt.Errorf("%w: nil currency", ErrInvalidCurrency)
		}
		return normalizeRaw(string(v.Code))
	default:
		return "", fmt.Errorf("%w: unsupported input type %T", ErrInvalidCurrency, input)
	}
}

func normalizeRaw(raw string) (Code, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
		}
	}
	return Code(code), nil
}
