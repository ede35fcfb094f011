package nbp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// SourceName labels this client in logs and metrics.
const SourceName = "nbp"

// errNoTable marks a 404 from the API: no table is published for that date
// (weekends, holidays). It is not a service failure and does not trip the breaker.
var errNoTable = errors.New("no table published for date")

// Config configures the NBP client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxFailures       uint32        // consecutive failures before the breaker opens
	OpenTimeout       time.Duration // how long the breaker stays open
}

// Client reads table A of the National Bank of Poland exchange-rate API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.RatesMetrics
	logger     *slog.Logger
}

type rateResponse struct {
	Currency string          `json:"currency"`
	Code     string          `json:"code"`
	Mid      decimal.Decimal `json:"mid"`
}

type tableResponse struct {
	Table         string         `json:"table"`
	No            string         `json:"no"`
	EffectiveDate string         `json:"effectiveDate"`
	Rates         []rateResponse `json:"rates"`
}

// NewClient creates a new NBP client. A nil metrics disables instrumentation.
func NewClient(cfg Config, m *metrics.RatesMetrics, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		metrics:    m,
		logger:     logger.With(slog.String("source", SourceName)),
	}

	maxFailures := cfg.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        SourceName,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, errNoTable) ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, apperrors.ErrCancelled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Rate source circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			c.metrics.SetBreakerState(SourceName, float64(to))
		},
	})

	return c
}

// GetRateTable fetches table A for date.
func (c *Client) GetRateTable(ctx context.Context, date domain.DateKey) (*domain.RateTable, error) {
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			c.metrics.ObserveFetch(SourceName, metrics.OutcomeCancelled, time.Since(start))
			return nil, fmt.Errorf("%w: waiting for rate limiter: %v", apperrors.ErrCancelled, err)
		}
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeUnavailable, time.Since(start))
		return nil, fmt.Errorf("%w: rate limiter: %v", apperrors.ErrUnavailable, err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, date)
	})
	elapsed := time.Since(start)

	switch {
	case err == nil:
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeSuccess, elapsed)
		return result.(*domain.RateTable), nil
	case ctx.Err() != nil:
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeCancelled, elapsed)
		return nil, fmt.Errorf("%w: rate table request for %s", apperrors.ErrCancelled, date)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeBreakerOpen, elapsed)
		return nil, fmt.Errorf("%w: circuit breaker open: %v", apperrors.ErrUnavailable, err)
	case errors.Is(err, errNoTable):
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeNoTable, elapsed)
		return nil, err
	default:
		c.metrics.ObserveFetch(SourceName, metrics.OutcomeUnavailable, elapsed)
		return nil, err
	}
}

func (c *Client) fetch(ctx context.Context, date domain.DateKey) (*domain.RateTable, error) {
	url := fmt.Sprintf("%s/exchangerates/tables/A/%s/?format=json", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrCancelled, err)
		}
		return nil, fmt.Errorf("%w: failed to get rates from NBP: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w %s", apperrors.ErrUnavailable, errNoTable, date)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: NBP API returned status: %d", apperrors.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrCancelled, err)
		}
		return nil, fmt.Errorf("%w: failed to read response body: %v", apperrors.ErrUnavailable, err)
	}

	var tables []tableResponse
	if err := json.Unmarshal(body, &tables); err != nil {
		return nil, fmt.Errorf("%w: failed to parse NBP response: %v", apperrors.ErrUnavailable, err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: NBP response contains no table", apperrors.ErrUnavailable)
	}

	return toDomainTable(date, tables[0])
}

func toDomainTable(date domain.DateKey, t tableResponse) (*domain.RateTable, error) {
	table := &domain.RateTable{
		Date:   date,
		Number: t.No,
		Rates:  make([]domain.ExchangeRate, 0, len(t.Rates)),
	}
	if t.EffectiveDate != "" {
		effective, err := domain.ParseDateKey(t.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
		}
		table.EffectiveDate = effective
	}

	seen := make(map[string]struct{}, len(t.Rates))
	for _, r := range t.Rates {
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if code == "" || !r.Mid.IsPositive() {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		table.Rates = append(table.Rates, domain.ExchangeRate{
			CurrencyName: r.Currency,
			Code:         code,
			Rate:         r.Mid,
		})
	}
	return table, nil
}

var _ portsrepo.RateTableSource = (*Client)(nil)
