package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) LoadBlob(ctx context.Context, key string) ([]byte, error) {
	var slot SaveSlot
	if err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return slot.Blob, nil
}

// SaveBlob upserts on `slot_key` so repeated saves rewrite one row.
func (r *sqliteRepository) SaveBlob(ctx context.Context, key string, blob []byte) error {
	slot := SaveSlot{Key: key, Blob: blob}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
	}).Create(&slot).Error
}

func (r *sqliteRepository) DeleteBlob(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Unscoped().Where("slot_key = ?", key).Delete(&SaveSlot{}).Error
}
