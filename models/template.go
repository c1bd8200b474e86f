package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TemplateItem is one reusable task definition. Identity is the id; title
// and priority are mutable. Template order is significant and newly added
// items prepend.
type TemplateItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
}

// TemplateItems is the ordered template stored as a single JSON column,
// replaced wholesale on every save.
type TemplateItems []TemplateItem

// Value implements driver.Valuer.
func (t TemplateItems) Value() (driver.Value, error) {
	if t == nil {
		t = TemplateItems{}
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner. Priorities are normalized on the way in so
// foreign or missing values never escape the storage boundary.
func (t *TemplateItems) Scan(value interface{}) error {
	if value == nil {
		*t = TemplateItems{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported template items column type %T", value)
	}
	var items TemplateItems
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	for i := range items {
		items[i].Priority = NormalizePriority(items[i].Priority)
	}
	*t = items
	return nil
}

// UserTemplate is the single template row per user.
type UserTemplate struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     TemplateItems `gorm:"type:json" json:"items"`
	UpdatedAt time.Time     `json:"updated_at"`
}
