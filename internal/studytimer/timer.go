package studytimer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrInvalidDuration = errors.New("study duration must be positive")

const TickInterval = time.Second

// Timer counts down a study session. It only moves when Tick is called,
// either directly or by Run.
type Timer struct {
	mu        sync.Mutex
	total     time.Duration
	remaining time.Duration
	running   bool
	completed bool
}

func New(total time.Duration) (*Timer, error) {
	if total <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Timer{total: total, remaining: total}, nil
}

func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.completed {
		return
	}
	t.running = true
}

func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
}

// Reset stops the timer and sets a new total. A non-positive total keeps the
// current one.
func (t *Timer) Reset(total time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if total > 0 {
		t.total = total
	}
	t.remaining = t.total
	t.running = false
	t.completed = false
}

// Tick advances a running timer by d and returns what is left.
func (t *Timer) Tick(d time.Duration) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.completed {
		return t.remaining
	}

	t.remaining = max(0, t.remaining-d)
	if t.remaining == 0 {
		t.completed = true
		t.running = false
	}
	return t.remaining
}

func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.remaining
}

func (t *Timer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

func (t *Timer) Completed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.completed
}

// Progress is the remaining share of the total, 1 at start and 0 when done.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return float64(t.remaining) / float64(t.total)
}

// String renders the remaining time as minutes and seconds.
func (t *Timer) String() string {
	r := t.Remaining().Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(r.Minutes()), int(r.Seconds())%60)
}

// Run starts the timer and ticks it every interval until it completes or ctx
// is done. onTick, when set, sees the remaining time after every tick.
func (t *Timer) Run(ctx context.Context, interval time.Duration, onTick func(time.Duration)) error {
	if interval <= 0 {
		return ErrInvalidDuration
	}

	t.Start()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Pause()
			return ctx.Err()
		case <-ticker.C:
			left := t.Tick(interval)
			if onTick != nil {
				onTick(left)
			}
			if t.Completed() {
				return nil
			}
		}
	}
}
