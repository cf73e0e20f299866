package collector

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// StooqFetcher implements Fetcher using the Stooq daily CSV download
// endpoint, as the configurable alternate to Yahoo.
type StooqFetcher struct {
	BaseURL string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy
// support.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		BaseURL: "https://stooq.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

// FetchDailyCloses downloads the daily CSV for the symbol and keeps
// the Date/Close columns. Stooq tickers are lowercase; US stocks carry
// a ".us" suffix which callers are expected to include in the symbol.
func (f *StooqFetcher) FetchDailyCloses(symbol string, startYear int) (map[string]float64, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(context.Background()); err != nil {
			return nil, fmt.Errorf("stooq rate limit: %w", err)
		}
	}

	d1 := fmt.Sprintf("%d0101", startYear)
	d2 := time.Now().UTC().Format("20060102")
	u := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		f.BaseURL, url.QueryEscape(strings.ToLower(symbol)), d1, d2)

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq: status %d", resp.StatusCode)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("stooq decode csv: %w", err)
	}
	// Header: Date,Open,High,Low,Close,Volume
	if len(records) < 2 || len(records[0]) < 5 || records[0][0] != "Date" {
		return nil, fmt.Errorf("stooq: no data returned for %s", symbol)
	}

	closes := make(map[string]float64, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		c, err := strconv.ParseFloat(rec[4], 64)
		if err != nil || c <= 0 {
			continue
		}
		if _, err := time.Parse("2006-01-02", rec[0]); err != nil {
			continue
		}
		closes[rec[0]] = c
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("stooq: no usable closes for %s", symbol)
	}
	return closes, nil
}
