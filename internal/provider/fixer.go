// Package provider implements the Fixer-compatible historical rates client and its error taxonomy.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultFixerBaseURL is used when FixerConfig.BaseURL is empty.
const DefaultFixerBaseURL = "http://data.fixer.io/api"

const maxErrorBodyBytes = 512

var _ RatesProvider = (*FixerProvider)(nil)

// FixerConfig holds everything FixerProvider needs. The caller is responsible for
// populating AccessKey, typically from the environment.
type FixerConfig struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// Option customizes a FixerProvider.
type Option func(*FixerProvider)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *FixerProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// FixerProvider fetches historical rates from a Fixer-style API and derives cross-rates.
// It holds no mutable state and is safe for concurrent use.
type FixerProvider struct {
	baseURL   string
	accessKey string
	client    *http.Client
}

// NewFixerProvider creates a FixerProvider. It fails with ErrMissingAccessKey before any
// network activity when no access key is configured.
func NewFixerProvider(cfg FixerConfig, opts ...Option) (*FixerProvider, error) {
	if cfg.AccessKey == "" {
		return nil, &FetchError{Kind: ErrMissingAccessKey}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultFixerBaseURL
	}
	p := &FixerProvider{
		baseURL:   baseURL,
		accessKey: cfg.AccessKey,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type fixerError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type fixerResponse struct {
	Success *bool               `json:"success"`
	Base    string              `json:"base"`
	Date    string              `json:"date"`
	Rates   map[string]*float64 `json:"rates"`
	Error   *fixerError         `json:"error"`
}

// GetExchangeRate returns the rate of from against to on the given day.
func (p *FixerProvider) GetExchangeRate(ctx context.Context, from, to string, year, month, day int) (float64, error) {
	return p.Rate(ctx, Query{From: from, To: to, Date: Date{Year: year, Month: month, Day: day}})
}

// GetEuroExchangeRate returns the rate of code against the euro on the given day.
func (p *FixerProvider) GetEuroExchangeRate(ctx context.Context, code string, year, month, day int) (float64, error) {
	return p.GetExchangeRate(ctx, code, DefaultQuoteCurrency, year, month, day)
}

// Rate fetches the provider's rates for q.Date and returns rates[From] / rates[To].
// A zero denominator yields Inf or NaN.
func (p *FixerProvider) Rate(ctx context.Context, q Query) (float64, error) {
	to := q.quote()
	rates, err := p.fetchRates(ctx, p.historicalURL(q.From, to, q.Date))
	if err != nil {
		return 0, err
	}

	fromRate, err := rateOf(rates, q.From)
	if err != nil {
		return 0, err
	}
	toRate, err := rateOf(rates, to)
	if err != nil {
		return 0, err
	}
	return fromRate / toRate, nil
}

// rateOf looks up code in rates. A JSON null is a protocol error, not zero.
func rateOf(rates map[string]*float64, code string) (float64, error) {
	r, ok := rates[code]
	if !ok {
		return 0, missingRateErr(code)
	}
	if r == nil {
		return 0, protocolErr(fmt.Errorf("rate for %q is null", code))
	}
	return *r, nil
}

// historicalURL forms {base}/{YYYY-MM-DD}?access_key=..&symbols=from,to.
func (p *FixerProvider) historicalURL(from, to string, d Date) string {
	return fmt.Sprintf("%s/%s?access_key=%s&symbols=%s,%s",
		p.baseURL,
		d,
		url.QueryEscape(p.accessKey),
		url.QueryEscape(from),
		url.QueryEscape(to))
}

func (p *FixerProvider) fetchRates(ctx context.Context, reqURL string) (map[string]*float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, transportErr(fmt.Errorf("request creation failed: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, transportErr(fmt.Errorf("request failed: %w", redactKey(err)))
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, transportErr(&StatusError{StatusCode: resp.StatusCode, Body: string(body)})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("read body: %w", err))
	}

	var result fixerResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, protocolErr(fmt.Errorf("decode response: %w", err))
	}
	if result.Rates == nil {
		if result.Error != nil {
			return nil, protocolErr(fmt.Errorf("provider error %d (%s): %s",
				result.Error.Code, result.Error.Type, result.Error.Info))
		}
		return nil, protocolErr(errors.New(`response has no "rates" object`))
	}
	return result.Rates, nil
}

// redactKey strips the request URL from *url.Error so the access key never reaches logs.
func redactKey(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
