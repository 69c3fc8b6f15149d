package driver

import "time"

// Timer is the single scheduling primitive the driver is built on: a
// fire-and-forget one-shot callback. The returned cancel stops the callback
// if it has not fired yet and reports whether it did so in time.
type Timer interface {
	After(d time.Duration, fn func()) (cancel func() bool)
}

// SystemTimer schedules callbacks with time.AfterFunc.
type SystemTimer struct{}

func (SystemTimer) After(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
