package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harian/checklistd/models"
)

// GormDailyStore is the MySQL-backed DailyStore.
type GormDailyStore struct {
	db *gorm.DB
}

// NewDailyStore creates a DailyStore over the given connection.
func NewDailyStore(db *gorm.DB) *GormDailyStore {
	return &GormDailyStore{db: db}
}

// Load returns the snapshot for (user, day), or (nil, nil) when absent.
func (s *GormDailyStore) Load(ctx context.Context, userID uint, day string) (models.TaskItems, error) {
	var row models.DailySnapshot
	err := s.db.WithContext(ctx).Where("user_id = ? AND day = ?", userID, day).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("daily load", err)
	}
	return row.Items, nil
}

// Save upserts the full snapshot keyed by (user, day). Last write wins.
func (s *GormDailyStore) Save(ctx context.Context, userID uint, day string, items models.TaskItems) error {
	row := models.DailySnapshot{
		UserID:    userID,
		Day:       day,
		Items:     items,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&row).Error
	return wrap("daily save", err)
}

// LoadRange returns the stored snapshots between fromDay and toDay
// inclusive. Day keys sort lexicographically, so a string BETWEEN matches
// the calendar range. Days without a row are simply absent from the map.
func (s *GormDailyStore) LoadRange(ctx context.Context, userID uint, fromDay, toDay string) (map[string]models.TaskItems, error) {
	var rows []models.DailySnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Find(&rows).Error
	if err != nil {
		return nil, wrap("daily load range", err)
	}
	out := make(map[string]models.TaskItems, len(rows))
	for _, row := range rows {
		out[row.Day] = row.Items
	}
	return out, nil
}
