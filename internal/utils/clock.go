package utils

import (
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/ports"
)

// SystemClock implements ports.Clock with the time package.
type SystemClock struct{}

// NewSystemClock returns the wall-clock implementation of ports.Clock.
func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}

var _ ports.Clock = SystemClock{}
