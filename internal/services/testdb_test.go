package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/catalystlab/catalyst-backend/internal/database"
	"github.com/catalystlab/catalyst-backend/internal/seed"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func reseed(db *gorm.DB) error { return seed.Run(db) }

// newSeededDB additionally loads the curriculum and tools.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	if err := seed.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
