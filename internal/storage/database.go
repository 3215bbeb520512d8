package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SaveSlot is one persisted game-state blob.
type SaveSlot struct {
	gorm.Model
	Key  string `gorm:"column:slot_key;uniqueIndex;size:128"`
	Blob []byte `gorm:"column:blob;type:blob"`
}

// TableName pins the table name so renaming the type does not move the data.
func (SaveSlot) TableName() string { return "save_slots" }

// OpenAndMigrate opens the SQLite database at dataSourceName, creating the
// parent directory when needed, and migrates the schema.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dataSourceName != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SaveSlot{}); err != nil {
		return nil, err
	}
	return db, nil
}
