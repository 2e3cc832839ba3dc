package models

// Like represents a user's like on a tweet.
// The combination of UserID and TweetID must be unique.
type Like struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_like_user_tweet" json:"user_id"`
	TweetID uint `gorm:"not null;uniqueIndex:idx_like_user_tweet" json:"tweet_id"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user"`
}
