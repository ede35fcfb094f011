package ports

import "time"

// Timer is a pending callback scheduled through a Clock.
type Timer interface {
	// Stop prevents the callback from firing. It reports false if the callback already ran or was stopped.
	Stop() bool
}

// Clock abstracts wall time and deferred callbacks so timer behavior can be driven in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
