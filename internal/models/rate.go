package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateWindowMonths is how far back before the purchase date a rate may be recorded.
const RateWindowMonths = 6

// RateObservation is a single published exchange rate and the date it was recorded.
type RateObservation struct {
	Country      string
	Currency     string
	ExchangeRate decimal.Decimal
	RecordDate   time.Time
}

// RateWindow returns the inclusive range of record dates valid for a purchase
// made on transactionDate.
func RateWindow(transactionDate time.Time) (start, end time.Time) {
	end = CalendarDate(transactionDate)
	start = SubtractMonths(end, RateWindowMonths)
	return start, end
}

// InRateWindow reports whether recordDate falls within RateWindow(transactionDate).
func InRateWindow(recordDate, transactionDate time.Time) bool {
	start, end := RateWindow(transactionDate)
	d := CalendarDate(recordDate)
	return !d.Before(start) && !d.After(end)
}
