package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TaskItem is one entry of a day's checklist. It is detached from the
// template item that seeded it; later template edits never touch it.
type TaskItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Done     bool     `json:"done"`
	Priority Priority `json:"priority"`
}

// TaskItems is the ordered day list stored as a single JSON column.
type TaskItems []TaskItem

// Value implements driver.Valuer.
func (t TaskItems) Value() (driver.Value, error) {
	if t == nil {
		t = TaskItems{}
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner, normalizing priorities on load.
func (t *TaskItems) Scan(value interface{}) error {
	if value == nil {
		*t = TaskItems{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported task items column type %T", value)
	}
	var items TaskItems
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	for i := range items {
		items[i].Priority = NormalizePriority(items[i].Priority)
	}
	*t = items
	return nil
}

// DailySnapshot is the persisted checklist state for one user on one
// calendar day. Day is a local-date key in YYYY-MM-DD form; exactly one
// row exists per (user, day) and every save replaces the whole list.
type DailySnapshot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_daily_user_day" json:"user_id"`
	Day       string    `gorm:"size:10;not null;uniqueIndex:idx_daily_user_day" json:"day"`
	Items     TaskItems `gorm:"type:json" json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}
