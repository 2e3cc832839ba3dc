package models

import (
	"time"
)

// Tweet represents a tweet owned by a single user. Ownership is set at
// creation and never changes afterwards.
type Tweet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TweetText string    `gorm:"type:text;not null" json:"tweet_text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Likes     []Like    `gorm:"foreignKey:TweetID" json:"likes,omitempty"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// String returns the tweet's textual projection.
func (t Tweet) String() string {
	return t.TweetText
}

// Ref returns the minimal projection of the tweet.
func (t *Tweet) Ref() TweetRef {
	return TweetRef{ID: t.ID, TweetText: t.TweetText}
}
