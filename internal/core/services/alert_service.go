package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
)

// DefaultAlertDuration is how long an alert stays visible when no duration is given.
const DefaultAlertDuration = 3000 * time.Millisecond

// AlertService holds the current user-facing message and at most one pending auto-clear timer.
type AlertService struct {
	BaseService
	clock           ports.Clock
	defaultDuration time.Duration

	mu      sync.Mutex
	message string
	pending ports.Timer
	seq     uint64 // bumped on every trigger/clear; a timer only clears the message it was scheduled for
	closed  bool
}

// NewAlertService creates a new AlertService. A non-positive defaultDuration selects DefaultAlertDuration.
func NewAlertService(clock ports.Clock, defaultDuration time.Duration, logger *slog.Logger) *AlertService {
	if defaultDuration <= 0 {
		defaultDuration = DefaultAlertDuration
	}
	return &AlertService{
		BaseService:     BaseService{Logger: logger},
		clock:           clock,
		defaultDuration: defaultDuration,
	}
}

// Trigger shows message and schedules it to clear after duration, cancelling any previous timer.
func (s *AlertService) Trigger(message string, duration time.Duration) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: alert message cannot be empty", apperrors.ErrValidation)
	}
	if duration <= 0 {
		duration = s.defaultDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	s.stopPendingLocked()
	s.seq++
	seq := s.seq
	s.message = message
	s.pending = s.clock.AfterFunc(duration, func() { s.expire(seq) })

	s.LogDebug(context.Background(), "Alert triggered", slog.String("message", message), slog.Duration("duration", duration))
	return nil
}

// Clear removes the message immediately.
func (s *AlertService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPendingLocked()
	s.seq++
	s.message = ""
}

// Message returns the visible message.
func (s *AlertService) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Close cancels the pending timer. Triggers after Close are ignored.
func (s *AlertService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPendingLocked()
	s.seq++
	s.closed = true
}

func (s *AlertService) expire(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq != s.seq {
		return
	}
	s.message = ""
	s.pending = nil
}

func (s *AlertService) stopPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

var _ portssvc.AlertSvc = (*AlertService)(nil)
