package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConverterOptions configures the initial form state.
type ConverterOptions struct {
	DefaultFromCurrency string
	DefaultToCurrency   string
	AlertDuration       time.Duration
}

// ConverterService drives the converter form: it owns the date, locale, rate table and
// form inputs, reloads the table when date or locale change, and reports failures
// through the alert service.
type ConverterService struct {
	BaseService
	rates      portssvc.RateTableSvc
	conversion portssvc.ConversionSvc
	alerts     portssvc.AlertSvc
	locales    portssvc.LocaleSvcFacade
	clock      ports.Clock
	opts       ConverterOptions

	baseCtx    context.Context
	baseCancel context.CancelFunc
	wg         sync.WaitGroup

	// localeMu serializes locale read, persist and apply; it is taken before mu.
	localeMu sync.Mutex

	mu          sync.Mutex
	started     bool
	closed      bool
	state       domain.ConverterState
	date        domain.DateKey
	locale      domain.Locale
	table       *domain.RateTable
	amount      string
	from        string
	to          string
	result      *decimal.Decimal
	generation  uint64
	cancelFetch context.CancelFunc
	settled     chan struct{} // closed when the current fetch has been applied or superseded
}

// NewConverterService creates a new ConverterService in the idle state.
func NewConverterService(
	rates portssvc.RateTableSvc,
	conversion portssvc.ConversionSvc,
	alerts portssvc.AlertSvc,
	locales portssvc.LocaleSvcFacade,
	clock ports.Clock,
	logger *slog.Logger,
	opts ConverterOptions,
) *ConverterService {
	if opts.DefaultFromCurrency == "" {
		opts.DefaultFromCurrency = "USD"
	}
	if opts.DefaultToCurrency == "" {
		opts.DefaultToCurrency = "EUR"
	}
	if opts.AlertDuration <= 0 {
		opts.AlertDuration = DefaultAlertDuration
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &ConverterService{
		BaseService: BaseService{Logger: logger},
		rates:       rates,
		conversion:  conversion,
		alerts:      alerts,
		locales:     locales,
		clock:       clock,
		opts:        opts,
		baseCtx:     baseCtx,
		baseCancel:  baseCancel,
		state:       domain.StateIdle,
		locale:      domain.DefaultLocale,
		from:        strings.ToUpper(opts.DefaultFromCurrency),
		to:          strings.ToUpper(opts.DefaultToCurrency),
	}
}

// Start loads the persisted locale and issues the first fetch for yesterday's table.
// Calling it again is a no-op.
func (s *ConverterService) Start(ctx context.Context) error {
	s.localeMu.Lock()
	defer s.localeMu.Unlock()
	locale := s.locales.CurrentLocale(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("%w: converter is closed", apperrors.ErrValidation)
	}
	if s.started {
		return nil
	}
	s.started = true
	s.locale = locale
	if s.date.IsZero() {
		s.date = domain.Yesterday(s.clock.Now())
	}
	s.LogInfo(ctx, "Converter started", slog.String("date", s.date.String()), slog.String("locale", string(locale)))
	s.reloadLocked()
	return nil
}

// SetDate changes the table date. Dates after yesterday are rejected.
func (s *ConverterService) SetDate(date domain.DateKey) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	maxDate := domain.Yesterday(s.clock.Now())
	if date.After(maxDate) {
		return fmt.Errorf("%w: date %s is after %s", apperrors.ErrValidation, date, maxDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.date.Equal(date) {
		return nil
	}
	s.date = date
	if s.started {
		s.reloadLocked()
	}
	return nil
}

// SetLocale switches the label dictionary, persists the choice and reloads the table.
// A failure to persist is logged and does not block the switch.
func (s *ConverterService) SetLocale(ctx context.Context, locale domain.Locale) error {
	if !locale.IsValid() {
		return fmt.Errorf("%w: unsupported locale %q", apperrors.ErrValidation, locale)
	}

	s.localeMu.Lock()
	defer s.localeMu.Unlock()
	s.switchLocale(ctx, locale)
	return nil
}

// ToggleLocale flips the locale and returns the new one.
func (s *ConverterService) ToggleLocale(ctx context.Context) (domain.Locale, error) {
	s.localeMu.Lock()
	defer s.localeMu.Unlock()

	s.mu.Lock()
	next := s.locale.Toggle()
	s.mu.Unlock()

	s.switchLocale(ctx, next)
	return next, nil
}

// switchLocale persists then applies locale. Callers hold localeMu so the stored
// and in-memory values cannot diverge; mu is not held across the save.
func (s *ConverterService) switchLocale(ctx context.Context, locale domain.Locale) {
	if err := s.locales.SaveLocale(ctx, locale); err != nil {
		s.LogWarn(ctx, err, "Failed to persist locale preference", slog.String("locale", string(locale)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.locale == locale {
		return
	}
	s.locale = locale
	if s.started {
		s.reloadLocked()
	}
}

// SetAmount stores the raw amount text and drops the previous result.
func (s *ConverterService) SetAmount(amountText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.amount != amountText {
		s.amount = amountText
		s.result = nil
	}
}

// SetCurrencies stores the selected codes and drops the previous result.
func (s *ConverterService) SetCurrencies(fromCode, toCode string) {
	fromCode = strings.ToUpper(strings.TrimSpace(fromCode))
	toCode = strings.ToUpper(strings.TrimSpace(toCode))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.from != fromCode || s.to != toCode {
		s.from = fromCode
		s.to = toCode
		s.result = nil
	}
}

// Convert runs the calculator against the current amount and table.
// Errors are also surfaced to the user as an alert.
// The stored result is kept when the table later reloads.
func (s *ConverterService) Convert() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.conversion.Convert(s.amount, s.table.Find(s.from), s.table.Find(s.to))
	if err != nil {
		labels := s.locale.Labels()
		message := labels.RatesNotFound
		if errors.Is(err, apperrors.ErrEmptyOrInvalidAmount) {
			message = labels.EmptyAmount
		}
		s.triggerAlertLocked(message)
		return decimal.Zero, err
	}

	s.result = &result
	return result, nil
}

// DismissAlert clears the visible alert.
func (s *ConverterService) DismissAlert() {
	s.alerts.Clear()
}

// Snapshot returns a copy of the state rendered by the view layer.
func (s *ConverterService) Snapshot() domain.ConverterView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AwaitSettled blocks until the latest fetch has been applied, the converter is closed,
// or ctx is done.
func (s *ConverterService) AwaitSettled(ctx context.Context) (domain.ConverterView, error) {
	for {
		s.mu.Lock()
		if s.state != domain.StateLoading || s.settled == nil {
			view := s.snapshotLocked()
			s.mu.Unlock()
			return view, nil
		}
		settled := s.settled
		s.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		}
	}
}

// Close cancels the in-flight fetch, waits for it to return and stops the alert timer.
func (s *ConverterService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.baseCancel()
	s.closeSettledLocked()
	s.mu.Unlock()

	s.wg.Wait()
	s.alerts.Close()
}

// reloadLocked cancels the outstanding fetch and starts a new one for the current date and locale.
func (s *ConverterService) reloadLocked() {
	if s.cancelFetch != nil {
		s.cancelFetch()
	}
	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancelFetch = cancel
	s.generation++
	generation := s.generation
	s.state = domain.StateLoading
	s.closeSettledLocked()
	s.settled = make(chan struct{})

	date, locale := s.date, s.locale
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		table, err := s.rates.FetchRateTable(ctx, date, locale)
		s.applyFetchResult(generation, table, err)
	}()
}

func (s *ConverterService) applyFetchResult(generation uint64, table *domain.RateTable, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Superseded or torn down: the result is dropped without touching state or alerts.
	if s.closed || generation != s.generation {
		s.LogDebug(s.baseCtx, "Discarding superseded rate table fetch", slog.Uint64("generation", generation))
		return
	}
	s.cancelFetch = nil
	defer s.closeSettledLocked()

	if errors.Is(err, apperrors.ErrCancelled) {
		s.state = domain.StateFailed
		s.LogDebug(s.baseCtx, "Rate table fetch cancelled", slog.String("date", s.date.String()))
		return
	}
	if err != nil {
		s.state = domain.StateFailed
		s.LogWarn(s.baseCtx, err, "Rate table fetch failed", slog.String("date", s.date.String()))
		s.triggerAlertLocked(s.locale.Labels().APIUnavailable)
		return
	}

	s.state = domain.StateReady
	s.table = table
	s.alerts.Clear()
}

func (s *ConverterService) triggerAlertLocked(message string) {
	if err := s.alerts.Trigger(message, s.opts.AlertDuration); err != nil {
		s.LogError(s.baseCtx, err, "Failed to trigger alert")
	}
}

func (s *ConverterService) closeSettledLocked() {
	if s.settled != nil {
		close(s.settled)
		s.settled = nil
	}
}

func (s *ConverterService) snapshotLocked() domain.ConverterView {
	view := domain.ConverterView{
		State:        s.state,
		Date:         s.date,
		MaxDate:      domain.Yesterday(s.clock.Now()),
		Locale:       s.locale,
		Labels:       s.locale.Labels(),
		Table:        s.table.Clone(),
		AlertMessage: s.alerts.Message(),
		Amount:       s.amount,
		FromCurrency: s.from,
		ToCurrency:   s.to,
	}
	if s.result != nil {
		result := *s.result
		view.Result = &result
	}
	return view
}

var _ portssvc.ConverterSvcFacade = (*ConverterService)(nil)
