package service

import "time"

const (
	DefaultHoldDuration = 5 * time.Minute
	DefaultMaxSeats     = 10
)

type options struct {
	now          func() time.Time
	holdDuration time.Duration
	maxSeats     int
}

// Option 調整 service 的時間來源與限制
type Option func(*options)

// WithClock 測試時注入固定時間
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithHoldDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.holdDuration = d
		}
	}
}

func WithMaxSeats(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSeats = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:          func() time.Time { return time.Now().UTC() },
		holdDuration: DefaultHoldDuration,
		maxSeats:     DefaultMaxSeats,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
