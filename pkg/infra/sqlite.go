package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type SQLiteConfig struct {
	Dir  string
	File string
}

func NewSQLiteConnection(cfg SQLiteConfig) (*gorm.DB, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", cfg.Dir, err)
	}
	db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.Dir, cfg.File)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, err
}
