package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedFilterRepository struct {
	db *gorm.DB
}

func NewSavedFilterRepository(db *gorm.DB) *SavedFilterRepository {
	return &SavedFilterRepository{db: db}
}

type savedFilterModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_saved_filters_user_screen"`
	Screen    string    `gorm:"column:screen;uniqueIndex:idx_saved_filters_user_screen"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (savedFilterModel) TableName() string { return "saved_filters" }

// Upsert replaces the stored payload for (user, screen).
func (r *SavedFilterRepository) Upsert(ctx context.Context, f *domain.SavedFilter) error {
	m := savedFilterModel{
		UserID:    f.UserID,
		Screen:    f.Screen,
		Payload:   f.Payload,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "screen"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&m).Error
}

// Get returns the stored filter or gorm.ErrRecordNotFound.
func (r *SavedFilterRepository) Get(ctx context.Context, userID int64, screen string) (*domain.SavedFilter, error) {
	var m savedFilterModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND screen = ?", userID, screen).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.SavedFilter{
		ID:        m.ID,
		UserID:    m.UserID,
		Screen:    m.Screen,
		Payload:   m.Payload,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *SavedFilterRepository) Delete(ctx context.Context, userID int64, screen string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND screen = ?", userID, screen).
		Delete(&savedFilterModel{}).Error
}
