package services

import "time"

// AlertSvc manages the single transient message shown to the user.
type AlertSvc interface {
	// Trigger replaces the current message and schedules it to clear after duration.
	// A non-positive duration selects the configured default.
	Trigger(message string, duration time.Duration) error

	// Clear removes the message and cancels its pending timer.
	Clear()

	// Message returns the current message, empty when no alert is shown.
	Message() string

	// Close cancels any pending timer; no callback fires afterwards.
	Close()
}
