// Package clock abstracts time.Now and timer scheduling so the inactivity
// countdown and the delayed loan deposit can be driven deterministically in
// tests. Production code injects Real(); tests inject a Fake and advance it
// manually.
package clock

import "time"

// Clock provides the current time and one-shot timer scheduling.
type Clock interface {
	Now() time.Time

	// AfterFunc waits for d, then calls f. The returned Timer can cancel
	// the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	// Stop cancels the pending call. It reports false if the call already
	// ran or was stopped.
	Stop() bool
}

type realClock struct{}

// Real returns the wall clock backed by the time package.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
