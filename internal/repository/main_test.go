package repository

import (
	"testing"

	"chirp/internal/database"
	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// createTestUser persists a user with generated identity fields.
func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: "hashed-password",
		IsActive: true,
		Image:    models.DefaultProfileImage,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// createTestTweet persists a tweet owned by the given user.
func createTestTweet(t *testing.T, db *gorm.DB, ownerID uint, text string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{TweetText: text, UserID: ownerID}
	if err := db.Create(tweet).Error; err != nil {
		t.Fatalf("create tweet: %v", err)
	}
	return tweet
}
