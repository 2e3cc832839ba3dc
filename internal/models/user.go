// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfileImage is the placeholder assigned to accounts that never
// uploaded a picture, and restored when an upload is deleted.
const DefaultProfileImage = "default.png"

// User represents a registered account in the Chirp application.
// The follow graph is not embedded here; see Follow.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool           `gorm:"not null;default:false" json:"-"`
	IsSuperuser bool           `gorm:"not null;default:false" json:"-"`
	Image       string         `gorm:"not null;default:'default.png'" json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserRef is the minimal user projection embedded in relationship views.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TweetRef is the minimal tweet projection embedded in a user's likes.
type TweetRef struct {
	ID        uint   `json:"id"`
	TweetText string `json:"tweet_text"`
}

// Profile is the full user projection returned by the manage-me endpoints.
type Profile struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Image     string     `json:"image"`
	Follows   []UserRef  `json:"follows"`
	Followers []UserRef  `json:"followers"`
	Likes     []TweetRef `json:"likes"`
}

// Ref returns the minimal projection of the user.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}
