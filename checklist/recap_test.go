package checklist

import (
	"context"
	"testing"
)

func TestRecap(t *testing.T) {
	ctx := context.Background()

	t.Run("missing days show as zero rows", func(t *testing.T) {
		dailies := newMemDailyStore()
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = fullDay(3)
		dailies.snaps[dailyKey(1, keyDaysAgo(2))] = fullDay(2)
		svc := newTestService(newMemTemplateStore(), dailies)

		rows := svc.Recap(ctx, 1, 7)
		if len(rows) != 7 {
			t.Fatalf("expected 7 rows, got %d", len(rows))
		}
		if rows[0].Total != 3 || !rows[0].FullDone {
			t.Errorf("unexpected today row %+v", rows[0])
		}
		if rows[1].Total != 0 || rows[1].Percent != 0 || rows[1].FullDone {
			t.Errorf("expected empty row for missing day, got %+v", rows[1])
		}
		if rows[2].Total != 2 || !rows[2].FullDone {
			t.Errorf("unexpected row for 2 days ago %+v", rows[2])
		}
	})

	t.Run("rows are most recent first", func(t *testing.T) {
		svc := newTestService(newMemTemplateStore(), newMemDailyStore())
		rows := svc.Recap(ctx, 1, 7)
		for i := 1; i < len(rows); i++ {
			if !(rows[i].Date < rows[i-1].Date) {
				t.Errorf("rows out of order at %d: %s then %s", i, rows[i-1].Date, rows[i].Date)
			}
		}
		if rows[0].Date != keyDaysAgo(0) {
			t.Errorf("expected today first, got %s", rows[0].Date)
		}
	})

	t.Run("partial day", func(t *testing.T) {
		dailies := newMemDailyStore()
		items := fullDay(5)
		items[0].Done = false
		items[1].Done = false
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = items
		svc := newTestService(newMemTemplateStore(), dailies)

		rows := svc.Recap(ctx, 1, 1)
		row := rows[0]
		if row.Done != 3 || row.Total != 5 || row.Percent != 60 || row.FullDone {
			t.Errorf("unexpected row %+v", row)
		}
	})

	t.Run("other users are invisible", func(t *testing.T) {
		dailies := newMemDailyStore()
		dailies.snaps[dailyKey(2, keyDaysAgo(0))] = fullDay(3)
		svc := newTestService(newMemTemplateStore(), dailies)

		rows := svc.Recap(ctx, 1, 1)
		if rows[0].Total != 0 {
			t.Errorf("leaked another user's snapshot: %+v", rows[0])
		}
	})

	t.Run("range failure degrades to all-zero rows", func(t *testing.T) {
		dailies := newMemDailyStore()
		dailies.snaps[dailyKey(1, keyDaysAgo(0))] = fullDay(3)
		dailies.rangeErr = errDown
		svc := newTestService(newMemTemplateStore(), dailies)

		rows := svc.Recap(ctx, 1, 7)
		if len(rows) != 7 {
			t.Fatalf("expected 7 rows, got %d", len(rows))
		}
		for i, row := range rows {
			if row.Total != 0 || row.Done != 0 || row.Percent != 0 || row.FullDone {
				t.Errorf("row %d not zeroed: %+v", i, row)
			}
		}
	})

	t.Run("non-positive window falls back to the default", func(t *testing.T) {
		svc := newTestService(newMemTemplateStore(), newMemDailyStore())
		rows := svc.Recap(ctx, 1, 0)
		if len(rows) != 7 {
			t.Errorf("expected default window of 7 rows, got %d", len(rows))
		}
	})
}

func TestPercent(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{3, 5, 60},
		{2, 3, 67},
		{1, 3, 33},
		{1, 6, 17},
	}
	for _, c := range cases {
		if got := percent(c.done, c.total); got != c.want {
			t.Errorf("percent(%d, %d) = %d, want %d", c.done, c.total, got, c.want)
		}
	}
}

func TestRecapEmpty(t *testing.T) {
	if !RecapEmpty(nil) {
		t.Errorf("nil rows should read as empty")
	}
	if !RecapEmpty([]RecapRow{{Date: "2024-01-10"}}) {
		t.Errorf("all-zero rows should read as empty")
	}
	if RecapEmpty([]RecapRow{{Date: "2024-01-10", Total: 1}}) {
		t.Errorf("a row with tasks should not read as empty")
	}
}
