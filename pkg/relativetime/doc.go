// Package relativetime keeps relative-time displays ("3 minutes ago")
// current by scheduling a re-evaluation at the next instant the displayed
// text would change.
//
// A display like "10 seconds ago" goes stale the moment the second count
// ticks over; "2 hours ago" is stable for up to an hour. Instead of polling,
// [Scheduler.Schedule] computes the next such boundary crossing for the
// value's display unit, clamps it to the caller's minimum update interval,
// and arms a one-shot timer. When the timer fires, the callback runs and the
// timer is re-armed for the following boundary.
//
//	sched := relativetime.NewScheduler()
//	defer sched.Close()
//
//	sub := sched.Schedule(createdAt, time.Now(), 10*time.Second, func(now time.Time) {
//	    render(relativetime.Format(createdAt, now))
//	})
//	defer sub.Cancel()
//
// Cancel is idempotent and must be called when the binding unmounts; a
// pending timer left behind is a leak, and a stale callback firing after
// teardown is a bug. A non-positive interval disables auto-updating
// entirely: the subscription is inert and no timer is ever armed.
package relativetime
