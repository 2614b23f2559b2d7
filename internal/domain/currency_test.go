package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_AcceptedForms(t *testing.T) {
	usd := Currency{Code: "usd", Name: "US Dollar"}

	cases := []struct {
		name  string
		input any
	}{
		{name: "uppercase string", input: "USD"},
		{name: "lowercase string", input: "usd"},
		{name: "padded string", input: "  usd "},
		{name: "code", input: Code("Usd")},
		{name: "currency value", input: usd},
		{name: "currency pointer", input: &usd},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			require.NoError(t, err)
			require.Equal(t, Code("USD"), got)
		})
	}
}

func TestNormalize_InvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		input any
	}{
		{name: "empty string", input: ""},
		{name: "too short", input: "US"},
		{name: "too long", input: "USDX"},
		{name: "digits", input: "U5D"},
		{name: "punctuation", input: "us$"},
		{name: "nil currency pointer", input: (*Currency)(nil)},
		{name: "unsupported type", input: 840},
		{name: "nil", input: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.input)
			require.ErrorIs(t, err, ErrInvalidCurrency)
		})
	}
}

func TestRatePair_OrderMatters(t *testing.T) {
	usdEur := RatePair{From: "USD", To: "EUR"}
	eurUsd := RatePair{From: "EUR", To: "USD"}

	require.NotEqual(t, usdEur, eurUsd)
	require.Equal(t, eurUsd, usdEur.Reversed())
	require.Equal(t, "USD/EUR", usdEur.String())
}
