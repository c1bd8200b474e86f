package checklist

import (
	"context"
	"testing"
)

func TestStreak(t *testing.T) {
	ctx := context.Background()

	t.Run("empty day breaks the run even with full days behind it", func(t *testing.T) {
		dailies := newMemDailyStore()
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = fullDay(3)
		dailies.snaps[dailyKey(1, keyDaysAgo(1))] = fullDay(3)
		// day 2 has no snapshot
		dailies.snaps[dailyKey(1, keyDaysAgo(3))] = fullDay(3)
		svc := newTestService(newMemTemplateStore(), dailies)

		if got := svc.Streak(ctx, 1); got != 2 {
			t.Errorf("expected streak 2, got %d", got)
		}
	})

	t.Run("no snapshots at all", func(t *testing.T) {
		svc := newTestService(newMemTemplateStore(), newMemDailyStore())
		if got := svc.Streak(ctx, 1); got != 0 {
			t.Errorf("expected streak 0, got %d", got)
		}
	})

	t.Run("today not fully done", func(t *testing.T) {
		dailies := newMemDailyStore()
		items := fullDay(3)
		items[2].Done = false
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = items
		dailies.snaps[dailyKey(1, keyDaysAgo(1))] = fullDay(3)
		svc := newTestService(newMemTemplateStore(), dailies)

		if got := svc.Streak(ctx, 1); got != 0 {
			t.Errorf("expected streak 0 when today is partial, got %d", got)
		}
	})

	t.Run("unbroken run of full days", func(t *testing.T) {
		dailies := newMemDailyStore()
		for i := 0; i < 5; i++ {
			dailies.snaps[dailyKey(1, keyDaysAgo(i))] = fullDay(2)
		}
		svc := newTestService(newMemTemplateStore(), dailies)

		if got := svc.Streak(ctx, 1); got != 5 {
			t.Errorf("expected streak 5, got %d", got)
		}
	})

	t.Run("capped at the scan window", func(t *testing.T) {
		dailies := newMemDailyStore()
		for i := 0; i < 40; i++ {
			dailies.snaps[dailyKey(1, keyDaysAgo(i))] = fullDay(1)
		}
		svc := newTestService(newMemTemplateStore(), dailies)

		if got := svc.Streak(ctx, 1); got != 30 {
			t.Errorf("expected streak capped at 30, got %d", got)
		}
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		dailies := newMemDailyStore()
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = fullDay(3)
		dailies.rangeErr = errDown
		svc := newTestService(newMemTemplateStore(), dailies)

		if got := svc.Streak(ctx, 1); got != 0 {
			t.Errorf("expected streak 0 on store failure, got %d", got)
		}
	})
}
