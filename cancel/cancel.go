// Package cancel provides a cooperative cancellation flag shared between
// the charset and decoder packages, without either importing the other.
package cancel

import "sync/atomic"

// Flag is a cooperative cancellation signal. The zero value is ready to
// use and reports not-cancelled.
type Flag struct {
	set atomic.Bool
}

// New returns a Flag that has not been requested to cancel.
func New() *Flag {
	return &Flag{}
}

// Request marks the flag as cancelled. Safe to call concurrently and more
// than once.
func (f *Flag) Request() {
	if f == nil {
		return
	}
	f.set.Store(true)
}

// Requested reports whether cancellation has been requested. A nil *Flag
// is treated as never cancelled, so callers can pass a nil flag when
// cancellation support isn't needed.
func (f *Flag) Requested() bool {
	if f == nil {
		return false
	}
	return f.set.Load()
}
