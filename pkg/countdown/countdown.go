package countdown

import (
	"context"
	"fmt"
	"time"
)

// DefaultStart is the number of seconds shown after a successful purchase.
const DefaultStart = 5

// State is a single observable step of a running countdown.
// Done is true only on the terminal step, after Remaining reached zero;
// the caller performs its final action (typically a redirect) on that step
// and never before.
type State struct {
	Remaining int
	Done      bool
}

// Countdown ticks from a start value down to zero on a fixed interval.
// A Countdown is stateless and may be reused; each Run call owns its ticker
// and stops it on return, so a cancelled run can never fire a late step.
type Countdown struct {
	start    int
	interval time.Duration
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithStart sets the initial value. Panics if start is not positive.
func WithStart(start int) Option {
	return func(c *Countdown) {
		if start <= 0 {
			panic(fmt.Sprintf("countdown: start must be positive, got %d", start))
		}
		c.start = start
	}
}

// WithInterval sets the tick interval. Panics if interval is not positive.
func WithInterval(interval time.Duration) Option {
	return func(c *Countdown) {
		if interval <= 0 {
			panic(fmt.Sprintf("countdown: interval must be positive, got %s", interval))
		}
		c.interval = interval
	}
}

// New creates a countdown starting at DefaultStart with one-second ticks.
func New(opts ...Option) *Countdown {
	c := &Countdown{
		start:    DefaultStart,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run emits the initial state immediately, then one state per interval with
// Remaining decremented, and finally the Done state once Remaining hits zero.
// It blocks until the countdown completes or ctx is cancelled. On
// cancellation it returns ctx.Err() without emitting the Done state, so the
// caller's terminal action is guaranteed not to run.
func (c *Countdown) Run(ctx context.Context, emit func(State)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	remaining := c.start
	emit(State{Remaining: remaining})

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			remaining--
			if remaining <= 0 {
				emit(State{Done: true})
				return nil
			}
			emit(State{Remaining: remaining})
		}
	}
}
