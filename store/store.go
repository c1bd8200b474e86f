package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harian/checklistd/models"
)

// StoreError wraps any transport, auth, or driver failure from the
// persistence layer so callers can detect it with errors.As and degrade
// instead of surfacing a fault.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err originates from the persistence layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// TemplateStore persists the per-user task template. Save replaces the
// whole template; Load returns (nil, nil) when no record exists.
type TemplateStore interface {
	Load(ctx context.Context, userID uint) (models.TemplateItems, error)
	Save(ctx context.Context, userID uint, items models.TemplateItems) error
}

// DailyStore persists per-day checklist snapshots keyed by (user, day).
// Load returns (nil, nil) when no snapshot exists; LoadRange maps day keys
// to item lists, omitting days with no stored record.
type DailyStore interface {
	Load(ctx context.Context, userID uint, day string) (models.TaskItems, error)
	Save(ctx context.Context, userID uint, day string, items models.TaskItems) error
	LoadRange(ctx context.Context, userID uint, fromDay, toDay string) (map[string]models.TaskItems, error)
}
