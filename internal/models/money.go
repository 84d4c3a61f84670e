package models

import "github.com/shopspring/decimal"

// AmountPlaces is the number of fractional digits kept for every currency amount.
const AmountPlaces int32 = 2

// RoundHalfEven rounds amount to the given number of fractional digits using
// banker's rounding: a value exactly at the midpoint goes to the even digit.
//
//	123.445 -> 123.44
//	123.455 -> 123.46
func RoundHalfEven(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.RoundBank(places)
}

// RoundAmount rounds a currency amount to AmountPlaces.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return RoundHalfEven(amount, AmountPlaces)
}
