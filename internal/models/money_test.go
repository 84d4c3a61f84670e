package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfEven(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "midpoint_rounds_down_to_even", amount: "123.445", expected: "123.44"},
		{name: "midpoint_rounds_up_to_even", amount: "123.455", expected: "123.46"},
		{name: "above_midpoint", amount: "123.4451", expected: "123.45"},
		{name: "below_midpoint", amount: "632.42835", expected: "632.43"},
		{name: "already_rounded", amount: "10.50", expected: "10.50"},
		{name: "integer", amount: "5100", expected: "5100.00"},
		{name: "negative_midpoint", amount: "-2.345", expected: "-2.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundHalfEven(decimal.RequireFromString(tt.amount), 2)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestRoundAmount_Idempotent(t *testing.T) {
	amounts := []string{"0.005", "0.015", "123.445", "123.455", "999999.995", "1.2345678"}

	for _, a := range amounts {
		t.Run(a, func(t *testing.T) {
			once := RoundAmount(decimal.RequireFromString(a))
			twice := RoundAmount(once)
			assert.True(t, once.Equal(twice), "round(round(%s)) = %s, round(%s) = %s", a, twice, a, once)
		})
	}
}

func TestRoundAmount_Products(t *testing.T) {
	tests := []struct {
		amount, rate, expected string
	}{
		{amount: "1000", rate: "5.10", expected: "5100.00"},
		{amount: "123.45", rate: "5.123", expected: "632.43"},
		{amount: "100.00", rate: "0.925", expected: "92.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"x"+tt.rate, func(t *testing.T) {
			product := decimal.RequireFromString(tt.amount).Mul(decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.expected, RoundAmount(product).StringFixed(AmountPlaces))
		})
	}
}
