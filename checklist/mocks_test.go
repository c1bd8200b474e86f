package checklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harian/checklistd/models"
	"github.com/harian/checklistd/store"
)

// Fixed "today" for every test: 2024-01-10 local time.
var testNow = time.Date(2024, 1, 10, 15, 4, 5, 0, time.Local)

func fixedClock() time.Time { return testNow }

var errDown = errors.New("connection refused")

type memTemplateStore struct {
	items   map[uint]models.TemplateItems
	loadErr error
	saveErr error
	saves   int
}

func newMemTemplateStore() *memTemplateStore {
	return &memTemplateStore{items: map[uint]models.TemplateItems{}}
}

func (m *memTemplateStore) Load(_ context.Context, userID uint) (models.TemplateItems, error) {
	if m.loadErr != nil {
		return nil, &store.StoreError{Op: "template load", Err: m.loadErr}
	}
	return m.items[userID], nil
}

func (m *memTemplateStore) Save(_ context.Context, userID uint, items models.TemplateItems) error {
	if m.saveErr != nil {
		return &store.StoreError{Op: "template save", Err: m.saveErr}
	}
	m.saves++
	m.items[userID] = items
	return nil
}

type memDailyStore struct {
	snaps    map[string]models.TaskItems
	loadErr  error
	saveErr  error
	rangeErr error
	saves    int
}

func newMemDailyStore() *memDailyStore {
	return &memDailyStore{snaps: map[string]models.TaskItems{}}
}

func dailyKey(userID uint, day string) string {
	return fmt.Sprintf("%d:%s", userID, day)
}

func (m *memDailyStore) Load(_ context.Context, userID uint, day string) (models.TaskItems, error) {
	if m.loadErr != nil {
		return nil, &store.StoreError{Op: "daily load", Err: m.loadErr}
	}
	return m.snaps[dailyKey(userID, day)], nil
}

func (m *memDailyStore) Save(_ context.Context, userID uint, day string, items models.TaskItems) error {
	if m.saveErr != nil {
		return &store.StoreError{Op: "daily save", Err: m.saveErr}
	}
	m.saves++
	m.snaps[dailyKey(userID, day)] = items
	return nil
}

func (m *memDailyStore) LoadRange(_ context.Context, userID uint, fromDay, toDay string) (map[string]models.TaskItems, error) {
	if m.rangeErr != nil {
		return nil, &store.StoreError{Op: "daily load range", Err: m.rangeErr}
	}
	out := map[string]models.TaskItems{}
	prefix := fmt.Sprintf("%d:", userID)
	for key, items := range m.snaps {
		day := key[len(prefix):]
		if key[:len(prefix)] == prefix && day >= fromDay && day <= toDay {
			out[day] = items
		}
	}
	return out, nil
}

func newTestService(templates *memTemplateStore, dailies *memDailyStore) *Service {
	return NewService(templates, dailies, nil, 7, 30).WithClock(fixedClock)
}

// fullDay builds a snapshot with n tasks, all done.
func fullDay(n int) models.TaskItems {
	items := make(models.TaskItems, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.TaskItem{
			ID:       fmt.Sprintf("task-%d", i),
			Title:    fmt.Sprintf("Task %d", i),
			Done:     true,
			Priority: models.PriorityMed,
		})
	}
	return items
}

// keyDaysAgo returns the day key n days before the fixed test clock.
func keyDaysAgo(n int) string {
	return DayKey(testNow.AddDate(0, 0, -n))
}
