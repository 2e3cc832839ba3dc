package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for the follow graph.
// Edges are stored in one direction only; the followers view is the reverse
// query over the same rows.
type FollowRepository interface {
	AddEdge(ctx context.Context, followerID, followedID uint) error
	RemoveEdge(ctx context.Context, followerID, followedID uint) error
	ListFollows(ctx context.Context, followerID uint) ([]models.User, error)
	ListFollowers(ctx context.Context, followedID uint) ([]models.User, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// AddEdge inserts the directed edge. Inserting an existing edge is a no-op,
// which makes concurrent follows of the same pair safe to interleave.
func (r *followRepository) AddEdge(ctx context.Context, followerID, followedID uint) error {
	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveEdge deletes the directed edge. Removing an absent edge is a no-op.
func (r *followRepository) RemoveEdge(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListFollows returns the users followed by followerID, most recently
// followed first (descending id stands in for recency; edges carry no
// timestamp).
func (r *followRepository) ListFollows(ctx context.Context, followerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows f ON f.followed_id = users.id").
		Where("f.follower_id = ?", followerID).
		Order("users.id DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListFollowers returns the users following followedID, descending id.
func (r *followRepository) ListFollowers(ctx context.Context, followedID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.followed_id = ?", followedID).
		Order("users.id DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
