// Package exchange provides the USD→EUR rate shown next to invoice totals.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"invoicer/internal/logger"
)

const (
	usdEURTicker = "USDEUR=X"
	userAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// Rate is a USD→EUR conversion factor. Live is false when the value is the
// configured fallback.
type Rate struct {
	Value     decimal.Decimal `json:"usd_to_eur"`
	Live      bool            `json:"live"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Convert converts a USD amount to EUR, rounded to cents.
func (r Rate) Convert(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(r.Value).Round(2)
}

// RateSource supplies the USD→EUR rate. Implementations never fail: on any
// retrieval problem they return a usable fallback.
type RateSource interface {
	USDToEUR(ctx context.Context) Rate
}

// chartResponse is the subset of the Yahoo Finance v8 chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string          `json:"symbol"`
				RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooSource fetches USDEUR=X from the Yahoo Finance chart API and caches
// the result for a TTL. A failed fetch caches the fallback for the shorter
// retry window. Concurrent callers share a single in-flight fetch, and a
// caller whose context ends first gets the last known rate.
type YahooSource struct {
	httpClient *http.Client
	baseURL    string
	fallback   decimal.Decimal
	ttl        time.Duration
	retryAfter time.Duration
	now        func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	cached  *Rate
	expires time.Time
}

// defaultRetryAfter bounds how long a fallback is served before the next
// fetch attempt.
const defaultRetryAfter = 30 * time.Second

// NewYahooSource creates a YahooSource. baseURL is the chart endpoint
// without the ticker, e.g. https://query1.finance.yahoo.com/v8/finance/chart.
func NewYahooSource(httpClient *http.Client, baseURL string, fallback decimal.Decimal, ttl time.Duration) *YahooSource {
	retry := defaultRetryAfter
	if ttl < retry {
		retry = ttl
	}
	return &YahooSource{
		httpClient: httpClient,
		baseURL:    baseURL,
		fallback:   fallback,
		ttl:        ttl,
		retryAfter: retry,
		now:        time.Now,
	}
}

// USDToEUR returns the cached rate, refreshing it once it has expired.
func (s *YahooSource) USDToEUR(ctx context.Context) Rate {
	if rate, ok := s.fresh(); ok {
		return rate
	}

	// The shared fetch outlives any single caller; the http client timeout
	// bounds it.
	ch := s.group.DoChan(usdEURTicker, func() (interface{}, error) {
		return s.refresh(context.WithoutCancel(ctx)), nil
	})

	select {
	case res := <-ch:
		return res.Val.(Rate)
	case <-ctx.Done():
		return s.lastKnown()
	}
}

// fresh returns the cached rate while it has not expired.
func (s *YahooSource) fresh() (Rate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Before(s.expires) {
		return *s.cached, true
	}
	return Rate{}, false
}

// lastKnown returns the cached rate even if expired, else the fallback.
func (s *YahooSource) lastKnown() Rate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached
	}
	return Rate{Value: s.fallback, Live: false, FetchedAt: s.now()}
}

// refresh fetches a new rate and stores it, or the fallback on failure.
func (s *YahooSource) refresh(ctx context.Context) Rate {
	value, err := s.fetch(ctx)
	now := s.now()

	rate := Rate{Value: value, Live: true, FetchedAt: now}
	expires := now.Add(s.ttl)
	if err != nil {
		logger.With("exchange").Warnw("using fallback USD/EUR rate",
			"error", err,
			"fallback", s.fallback.String(),
			"retry_after", s.retryAfter.String(),
		)
		rate = Rate{Value: s.fallback, Live: false, FetchedAt: now}
		expires = now.Add(s.retryAfter)
	}

	s.mu.Lock()
	s.cached = &rate
	s.expires = expires
	s.mu.Unlock()
	return rate
}

func (s *YahooSource) fetch(ctx context.Context) (decimal.Decimal, error) {
	url := s.baseURL + "/" + usdEURTicker + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building forex request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("forex http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("forex request: unexpected status %d", resp.StatusCode)
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return decimal.Zero, fmt.Errorf("decoding forex response: %w", err)
	}
	if chart.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("forex chart error: %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("no forex results for %s", usdEURTicker)
	}

	rate := chart.Chart.Result[0].Meta.RegularMarketPrice
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid forex rate: %s", rate)
	}
	return rate, nil
}

// StaticSource always returns the same rate. It backs tests and offline runs.
type StaticSource struct {
	Rate decimal.Decimal
}

// USDToEUR returns the static rate.
func (s StaticSource) USDToEUR(_ context.Context) Rate {
	return Rate{Value: s.Rate, Live: false}
}
