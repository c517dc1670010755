package provider

import (
	"context"
	"fmt"
)

// DefaultQuoteCurrency is used when a query leaves the target currency empty.
const DefaultQuoteCurrency = "EUR"

// Date is a calendar day as passed by the caller. It is not validated.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY-MM-DD with zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Query describes a single cross-rate lookup.
type Query struct {
	From string
	To   string
	Date Date
}

func (q Query) quote() string {
	if q.To == "" {
		return DefaultQuoteCurrency
	}
	return q.To
}

// RatesProvider defines an interface for fetching historical cross-rates from external sources.
type RatesProvider interface {
	Rate(ctx context.Context, q Query) (float64, error)
}
