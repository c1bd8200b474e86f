package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harian/checklistd/models"
)

// GormTemplateStore is the MySQL-backed TemplateStore.
type GormTemplateStore struct {
	db *gorm.DB
}

// NewTemplateStore creates a TemplateStore over the given connection.
func NewTemplateStore(db *gorm.DB) *GormTemplateStore {
	return &GormTemplateStore{db: db}
}

// Load returns the user's template, or (nil, nil) when none exists yet.
func (s *GormTemplateStore) Load(ctx context.Context, userID uint) (models.TemplateItems, error) {
	var row models.UserTemplate
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("template load", err)
	}
	return row.Items, nil
}

// Save upserts the full template keyed by user id. No existence check is
// needed; the unique index plus OnConflict gives replace semantics.
func (s *GormTemplateStore) Save(ctx context.Context, userID uint, items models.TemplateItems) error {
	row := models.UserTemplate{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&row).Error
	return wrap("template save", err)
}
