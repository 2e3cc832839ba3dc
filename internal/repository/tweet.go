package repository

import (
	"context"
	"errors"

	"chirp/internal/cache"
	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TweetRepository defines persistence operations for tweets. Every read takes
// the owner's id, so an unscoped "all tweets" query path does not exist.
type TweetRepository interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error)
	GetByIDForOwner(ctx context.Context, tweetID, ownerID uint) (*models.Tweet, error)
	ListLikedBy(ctx context.Context, userID uint) ([]models.Tweet, error)
	Create(ctx context.Context, tweet *models.Tweet) error
	Update(ctx context.Context, tweet *models.Tweet) error
	ReplaceLikes(ctx context.Context, tweetID uint, userIDs []uint) error
	Delete(ctx context.Context, tweetID uint) error
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository returns a new TweetRepository implementation.
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

// GetByIDForOwner loads a tweet only when ownerID owns it. A tweet owned by
// someone else yields the same NotFound as an absent one. The record is
// cache-aside through Redis; the ownership check runs on the cached copy too.
func (r *tweetRepository) GetByIDForOwner(ctx context.Context, tweetID, ownerID uint) (*models.Tweet, error) {
	var tweet models.Tweet
	key := cache.TweetKey(tweetID)

	err := cache.Aside(ctx, key, &tweet, cache.TweetTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Likes.User").
			First(&tweet, tweetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tweet", tweetID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if tweet.UserID != ownerID {
		return nil, models.NewNotFoundError("Tweet", tweetID)
	}
	return &tweet, nil
}

// ListLikedBy returns the tweets the given user has liked, descending id.
func (r *tweetRepository) ListLikedBy(ctx context.Context, userID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.WithContext(ctx).
		Model(&models.Tweet{}).
		Joins("JOIN likes l ON l.tweet_id = tweets.id").
		Where("l.user_id = ?", userID).
		Order("tweets.id DESC").
		Find(&tweets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).
		Model(tweet).
		Updates(map[string]any{"tweet_text": tweet.TweetText}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTweet(ctx, tweet.ID)
	return nil
}

// ReplaceLikes swaps the tweet's like edges for the given user ids in one
// transaction. Duplicate ids collapse onto the unique (user, tweet) key.
func (r *tweetRepository) ReplaceLikes(ctx context.Context, tweetID uint, userIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		for _, uid := range userIDs {
			like := models.Like{UserID: uid, TweetID: tweetID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTweet(ctx, tweetID)
	return nil
}

// Delete removes the tweet together with its like edges.
func (r *tweetRepository) Delete(ctx context.Context, tweetID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tweet{}, tweetID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTweet(ctx, tweetID)
	return nil
}
