package relativetime_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/relativetime"
)

func TestSelectUnit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago       time.Duration
		wantCount int64
		wantUnit  relativetime.Unit
	}{
		{10 * time.Second, 10, relativetime.UnitSecond},
		{44 * time.Second, 44, relativetime.UnitSecond},
		{45 * time.Second, 1, relativetime.UnitMinute},
		{90 * time.Second, 2, relativetime.UnitMinute},
		{44 * time.Minute, 44, relativetime.UnitMinute},
		{45 * time.Minute, 1, relativetime.UnitHour},
		{3 * time.Hour, 3, relativetime.UnitHour},
		{22 * time.Hour, 1, relativetime.UnitDay},
		{3 * 24 * time.Hour, 3, relativetime.UnitDay},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.ago.String(), func(t *testing.T) {
			t.Parallel()
			count, unit := relativetime.SelectUnit(now.Add(-tt.ago), now)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestSelectUnitFutureValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)
	count, unit := relativetime.SelectUnit(now.Add(10*time.Second), now)
	assert.Equal(t, int64(-10), count)
	assert.Equal(t, relativetime.UnitSecond, unit)
}

func TestNextDelay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		value       time.Time
		minInterval time.Duration
		want        time.Duration
	}{
		{
			// A 9-second-old value with a 10s minimum interval: the next
			// second boundary is 1s out, clamped up to the interval.
			name:        "clamped to interval",
			value:       now.Add(-9 * time.Second),
			minInterval: 10 * time.Second,
			want:        10 * time.Second,
		},
		{
			name:        "next second boundary",
			value:       now.Add(-9*time.Second - 300*time.Millisecond),
			minInterval: 0,
			want:        700 * time.Millisecond,
		},
		{
			name:        "next minute boundary",
			value:       now.Add(-2*time.Minute - 30*time.Second),
			minInterval: 0,
			want:        30 * time.Second,
		},
		{
			name:        "next hour boundary",
			value:       now.Add(-90 * time.Minute),
			minInterval: 0,
			want:        30 * time.Minute,
		},
		{
			name:        "future value counts down",
			value:       now.Add(10*time.Second + 400*time.Millisecond),
			minInterval: 0,
			want:        400 * time.Millisecond,
		},
		{
			name:        "future value on boundary",
			value:       now.Add(10 * time.Second),
			minInterval: 0,
			want:        time.Second,
		},
		{
			name:        "day-old value capped at a day",
			value:       now.Add(-40 * 24 * time.Hour),
			minInterval: 0,
			want:        24 * time.Hour,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := relativetime.NextDelay(tt.value, now, tt.minInterval)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, 24*time.Hour)
			if tt.minInterval > 0 {
				assert.GreaterOrEqual(t, got, tt.minInterval)
			}
		})
	}
}

func TestScheduleDisabled(t *testing.T) {
	t.Parallel()

	s := relativetime.NewScheduler()
	defer s.Close()

	// A zero interval disables auto-updating: no timer is ever armed.
	sub := s.Schedule(time.Now().Add(-time.Second), time.Now(), 0, func(time.Time) {
		t.Error("callback must not fire for a disabled subscription")
	})
	require.NotNil(t, sub)
	assert.Equal(t, 0, s.Active())

	assert.NotPanics(t, sub.Cancel)
	assert.NotPanics(t, sub.Cancel)
}

func TestScheduleFiresAndRearms(t *testing.T) {
	t.Parallel()

	s := relativetime.NewScheduler()
	defer s.Close()

	fired := make(chan time.Time, 1)
	start := time.Now()
	// 999ms into the current second: the boundary is 1ms out, clamped to
	// the 5ms interval.
	sub := s.Schedule(start.Add(-999*time.Millisecond), start, 5*time.Millisecond, func(now time.Time) {
		select {
		case fired <- now:
		default:
		}
	})
	defer sub.Cancel()

	assert.Equal(t, 1, s.Active())

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	// The subscription re-arms itself after firing.
	assert.Equal(t, 1, s.Active())

	sub.Cancel()
	assert.Equal(t, 0, s.Active())
}

func TestCancelIdempotent(t *testing.T) {
	t.Parallel()

	s := relativetime.NewScheduler()
	defer s.Close()

	sub := s.Schedule(time.Now().Add(-time.Minute), time.Now(), time.Second, func(time.Time) {})
	require.Equal(t, 1, s.Active())

	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 0, s.Active())
}

func TestSchedulerClose(t *testing.T) {
	t.Parallel()

	s := relativetime.NewScheduler()

	for i := 0; i < 3; i++ {
		s.Schedule(time.Now().Add(-time.Hour), time.Now(), time.Minute, func(time.Time) {})
	}
	require.Equal(t, 3, s.Active())

	s.Close()
	assert.Equal(t, 0, s.Active())

	// Scheduling after Close yields an inert subscription.
	sub := s.Schedule(time.Now(), time.Now(), time.Second, func(time.Time) {})
	assert.Equal(t, 0, s.Active())
	assert.NotPanics(t, sub.Cancel)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds ago"},
		{10 * time.Minute, "10 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, relativetime.Format(now.Add(-tt.ago), now))
		})
	}

	assert.Equal(t, fmt.Sprintf("%d minutes %s", 10, "from now"),
		relativetime.Format(now.Add(10*time.Minute), now))
}
