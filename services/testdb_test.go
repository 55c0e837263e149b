package services

import (
	"testing"

	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Need{},
		&entity.Store{},
		&entity.Review{},
		&entity.Favorite{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:     email,
		Password:  "x",
		Name:      "テストユーザー",
		AvatarURL: "https://example.com/avatar.svg",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func createTestStore(t *testing.T, db *gorm.DB, name string, avg float64, count int) *entity.Store {
	t.Helper()
	s := &entity.Store{
		NameJP:      name,
		AddressJP:   "ハノイ市どこか",
		AvgRating:   avg,
		ReviewCount: count,
		SpaceType:   entity.SpaceIndoor,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create test store: %v", err)
	}
	return s
}
