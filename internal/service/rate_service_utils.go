package service

import (
	"errors"
	"strconv"

	"xrate/internal/provider"
)

// ErrInvalidDate indicates the date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// ErrMissingCurrency indicates the source currency was not supplied.
var ErrMissingCurrency = errors.New("currency code is required")

// ErrHistoryDisabled indicates lookup history storage is not configured.
var ErrHistoryDisabled = errors.New("lookup history is disabled")

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")

// ParseDate splits a YYYY-MM-DD string into its numeric parts. Only the shape is
// checked; 2021-02-31 is accepted and forwarded to the provider unchanged.
func ParseDate(s string) (provider.Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return provider.Date{}, ErrInvalidDate
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return provider.Date{}, ErrInvalidDate
		}
	}
	// Digits only, so Atoi cannot fail.
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	return provider.Date{Year: year, Month: month, Day: day}, nil
}

// FormatRate renders a rate without rounding. Inf and NaN come out as "+Inf", "-Inf" and "NaN".
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
