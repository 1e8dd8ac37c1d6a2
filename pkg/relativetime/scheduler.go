package relativetime

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxDelay caps how far out a re-evaluation is scheduled. Day is the
// coarsest tracked unit, so a displayed value never changes more than once
// per day once it is that old.
const maxDelay = 24 * time.Hour

// NextDelay computes how long after now the display for value would next
// change: the time until |now-value| crosses the next whole multiple of the
// current display unit. The result is clamped to [minInterval, 24h] so a
// caller is never re-invoked more often than its configured interval.
func NextDelay(value, now time.Time, minInterval time.Duration) time.Duration {
	delta := now.Sub(value)
	_, unit := SelectUnit(value, now)
	step := unit.Duration()

	rem := delta.Abs() % step
	var d time.Duration
	if delta >= 0 {
		// Past value: the magnitude grows; next boundary is ahead.
		d = step - rem
	} else {
		// Future value: the magnitude shrinks toward the boundary below.
		d = rem
		if d == 0 {
			d = step
		}
	}

	if d < minInterval {
		d = minInterval
	}
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

// Scheduler owns the timers behind self-updating relative-time displays.
// The zero value is not usable; construct with NewScheduler. Close cancels
// every outstanding subscription.
type Scheduler struct {
	mu     sync.Mutex
	subs   map[string]*Subscription
	now    func() time.Time
	closed bool
}

// SchedulerOption configures a Scheduler during construction.
type SchedulerOption func(*Scheduler)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScheduler creates an empty scheduler.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		subs: make(map[string]*Subscription),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule arms a self-rearming one-shot timer that invokes onDue each time
// the relative display of value changes, starting from initialNow. The
// re-evaluation cadence is never faster than interval. A non-positive
// interval disables auto-updating: the returned subscription is inert and
// no timer is armed.
//
// The caller must Cancel the subscription when the binding unmounts.
func (s *Scheduler) Schedule(value, initialNow time.Time, interval time.Duration, onDue func(now time.Time)) *Subscription {
	sub := &Subscription{
		id:        uuid.NewString(),
		scheduler: s,
		value:     value,
		interval:  interval,
		onDue:     onDue,
	}

	if interval <= 0 || onDue == nil {
		sub.cancelled = true
		return sub
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sub.cancelled = true
		return sub
	}
	s.subs[sub.id] = sub
	sub.arm(NextDelay(value, initialNow, interval))
	return sub
}

// Active returns the number of subscriptions with a pending timer.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close cancels all outstanding subscriptions. Scheduling after Close
// returns inert subscriptions.
func (s *Scheduler) Close() {
	s.mu.Lock()
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.closed = true
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

func (s *Scheduler) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Subscription is one scheduled relative-time binding.
type Subscription struct {
	id        string
	scheduler *Scheduler
	value     time.Time
	interval  time.Duration
	onDue     func(now time.Time)

	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
}

// ID returns the subscription's unique identifier.
func (sub *Subscription) ID() string { return sub.id }

// Cancel stops the pending timer and deregisters the subscription.
// It is idempotent: cancelling an already-fired or already-cancelled
// subscription is a no-op.
func (sub *Subscription) Cancel() {
	sub.mu.Lock()
	if sub.cancelled {
		sub.mu.Unlock()
		return
	}
	sub.cancelled = true
	if sub.timer != nil {
		sub.timer.Stop()
		sub.timer = nil
	}
	sub.mu.Unlock()

	sub.scheduler.remove(sub.id)
}

// arm sets the one-shot timer. Callers hold no subscription lock.
func (sub *Subscription) arm(d time.Duration) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.cancelled {
		return
	}
	sub.timer = time.AfterFunc(d, sub.fire)
}

// fire runs on the timer goroutine: invoke the callback and re-arm for the
// next boundary. A cancellation racing the timer is checked before the
// callback runs so no stale update escapes after Cancel returns.
func (sub *Subscription) fire() {
	sub.mu.Lock()
	if sub.cancelled {
		sub.mu.Unlock()
		return
	}
	sub.mu.Unlock()

	now := sub.scheduler.now()
	sub.onDue(now)
	sub.arm(NextDelay(sub.value, now, sub.interval))
}
