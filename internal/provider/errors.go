package provider

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by FixerProvider matches exactly one of them with errors.Is.
var (
	// ErrMissingAccessKey is returned at construction when no credential was supplied.
	ErrMissingAccessKey = errors.New("missing provider access key")
	// ErrTransport covers connection, timeout and non-2xx status failures.
	ErrTransport = errors.New("provider transport failure")
	// ErrProtocol covers bodies that are not JSON, lack a "rates" object or carry a non-numeric rate.
	ErrProtocol = errors.New("malformed provider response")
	// ErrRateNotFound is returned when a requested currency is absent from "rates".
	ErrRateNotFound = errors.New("currency rate not found")
)

// FetchError ties a failure kind to its underlying cause.
type FetchError struct {
	Kind error
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusError reports a non-2xx response from the provider.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// MissingRateError names the currency that was absent from the response.
type MissingRateError struct {
	Currency string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no rate for %q in provider response", e.Currency)
}

func transportErr(err error) error { return &FetchError{Kind: ErrTransport, Err: err} }

func protocolErr(err error) error { return &FetchError{Kind: ErrProtocol, Err: err} }

func missingRateErr(code string) error {
	return &FetchError{Kind: ErrRateNotFound, Err: &MissingRateError{Currency: code}}
}
