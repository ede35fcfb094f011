package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Fake Clock ---

// FakeClock is a manually advanced ports.Clock.
// With ignoreStop set, stopped timers still fire, which simulates a callback racing its Stop.
type FakeClock struct {
	mu         sync.Mutex
	now        time.Time
	timers     []*fakeTimer
	ignoreStop bool
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs every due timer outside the clock lock.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if t.fired || (t.stopped && !c.ignoreStop) || t.at.After(c.now) {
			continue
		}
		t.fired = true
		due = append(due, t)
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending counts timers that have neither fired nor been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

var _ ports.Clock = (*FakeClock)(nil)

// --- Mock RateTableSource ---
type MockRateTableSource struct {
	mock.Mock
}

func (m *MockRateTableSource) GetRateTable(ctx context.Context, date domain.DateKey) (*domain.RateTable, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

var _ portsrepo.RateTableSource = (*MockRateTableSource)(nil)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetLocale(ctx context.Context) (domain.Locale, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Locale), args.Error(1)
}

func (m *MockSettingsRepository) SetLocale(ctx context.Context, locale domain.Locale) error {
	args := m.Called(ctx, locale)
	return args.Error(0)
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

// --- Gated rate table fetcher ---

// fetchResponse scripts the outcome of one date. A non-nil release blocks the fetch
// until closed; ignoreCancel keeps it blocked even after its context is cancelled.
type fetchResponse struct {
	table        *domain.RateTable
	err          error
	release      chan struct{}
	ignoreCancel bool
}

// gatedFetcher implements portssvc.RateTableSvc with scripted, optionally blocking responses.
type gatedFetcher struct {
	mu        sync.Mutex
	responses map[string]fetchResponse
	calls     []string
	started   chan string
	returned  chan string
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{
		responses: make(map[string]fetchResponse),
		started:   make(chan string, 32),
		returned:  make(chan string, 32),
	}
}

func (f *gatedFetcher) respond(date string, resp fetchResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[date] = resp
}

func (f *gatedFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *gatedFetcher) FetchRateTable(ctx context.Context, date domain.DateKey, locale domain.Locale) (*domain.RateTable, error) {
	key := date.String()
	f.mu.Lock()
	resp, ok := f.responses[key]
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	f.started <- key
	defer func() { f.returned <- key }()

	if !ok {
		return nil, fmt.Errorf("%w: no scripted table for %s", apperrors.ErrUnavailable, key)
	}
	if resp.release != nil {
		if resp.ignoreCancel {
			<-resp.release
		} else {
			select {
			case <-resp.release:
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", apperrors.ErrCancelled, ctx.Err())
			}
		}
	}
	if resp.err != nil {
		return nil, resp.err
	}
	normalized := resp.table.WithHomeCurrency(locale)
	return &normalized, nil
}

var _ portssvc.RateTableSvc = (*gatedFetcher)(nil)

// sampleTable builds a small table A with USD at 4.0 and EUR at 4.3.
func sampleTable(number string, date domain.DateKey) *domain.RateTable {
	return &domain.RateTable{
		Date:          date,
		EffectiveDate: date,
		Number:        number,
		Rates: []domain.ExchangeRate{
			{CurrencyName: "dolar amerykański", Code: "USD", Rate: decimal.RequireFromString("4.0")},
			{CurrencyName: "euro", Code: "EUR", Rate: decimal.RequireFromString("4.3")},
			{CurrencyName: "funt szterling", Code: "GBP", Rate: decimal.RequireFromString("5.05")},
		},
	}
}
