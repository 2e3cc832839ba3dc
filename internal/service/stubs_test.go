package service

import (
	"context"
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
)

// Function-backed repository stubs shared by the service tests in this
// package. Each no-op constructor returns a stub whose methods succeed with
// empty results; tests override only the calls they care about.

type userRepoStub struct {
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getRefByIDFn    func(ctx context.Context, id uint) (*models.UserRef, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	updateFn        func(ctx context.Context, user *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetRefByID(ctx context.Context, id uint) (*models.UserRef, error) {
	return s.getRefByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getRefByIDFn: func(_ context.Context, id uint) (*models.UserRef, error) {
			return &models.UserRef{ID: id}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, nil
		},
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
	}
}

type followRepoStub struct {
	addEdgeFn       func(ctx context.Context, followerID, followedID uint) error
	removeEdgeFn    func(ctx context.Context, followerID, followedID uint) error
	listFollowsFn   func(ctx context.Context, followerID uint) ([]models.User, error)
	listFollowersFn func(ctx context.Context, followedID uint) ([]models.User, error)
}

func (s *followRepoStub) AddEdge(ctx context.Context, followerID, followedID uint) error {
	return s.addEdgeFn(ctx, followerID, followedID)
}

func (s *followRepoStub) RemoveEdge(ctx context.Context, followerID, followedID uint) error {
	return s.removeEdgeFn(ctx, followerID, followedID)
}

func (s *followRepoStub) ListFollows(ctx context.Context, followerID uint) ([]models.User, error) {
	return s.listFollowsFn(ctx, followerID)
}

func (s *followRepoStub) ListFollowers(ctx context.Context, followedID uint) ([]models.User, error) {
	return s.listFollowersFn(ctx, followedID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		addEdgeFn:    func(_ context.Context, _, _ uint) error { return nil },
		removeEdgeFn: func(_ context.Context, _, _ uint) error { return nil },
		listFollowsFn: func(_ context.Context, _ uint) ([]models.User, error) {
			return nil, nil
		},
		listFollowersFn: func(_ context.Context, _ uint) ([]models.User, error) {
			return nil, nil
		},
	}
}

type tweetRepoStub struct {
	listByOwnerFn     func(ctx context.Context, ownerID uint) ([]models.Tweet, error)
	getByIDForOwnerFn func(ctx context.Context, tweetID, ownerID uint) (*models.Tweet, error)
	listLikedByFn     func(ctx context.Context, userID uint) ([]models.Tweet, error)
	createFn          func(ctx context.Context, tweet *models.Tweet) error
	updateFn          func(ctx context.Context, tweet *models.Tweet) error
	replaceLikesFn    func(ctx context.Context, tweetID uint, userIDs []uint) error
	deleteFn          func(ctx context.Context, tweetID uint) error
}

func (s *tweetRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *tweetRepoStub) GetByIDForOwner(ctx context.Context, tweetID, ownerID uint) (*models.Tweet, error) {
	return s.getByIDForOwnerFn(ctx, tweetID, ownerID)
}

func (s *tweetRepoStub) ListLikedBy(ctx context.Context, userID uint) ([]models.Tweet, error) {
	return s.listLikedByFn(ctx, userID)
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}

func (s *tweetRepoStub) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}

func (s *tweetRepoStub) ReplaceLikes(ctx context.Context, tweetID uint, userIDs []uint) error {
	return s.replaceLikesFn(ctx, tweetID, userIDs)
}

func (s *tweetRepoStub) Delete(ctx context.Context, tweetID uint) error {
	return s.deleteFn(ctx, tweetID)
}

func noopTweetRepo() *tweetRepoStub {
	return &tweetRepoStub{
		listByOwnerFn: func(_ context.Context, _ uint) ([]models.Tweet, error) {
			return nil, nil
		},
		getByIDForOwnerFn: func(_ context.Context, tweetID, ownerID uint) (*models.Tweet, error) {
			return &models.Tweet{ID: tweetID, UserID: ownerID}, nil
		},
		listLikedByFn: func(_ context.Context, _ uint) ([]models.Tweet, error) {
			return nil, nil
		},
		createFn:       func(_ context.Context, _ *models.Tweet) error { return nil },
		updateFn:       func(_ context.Context, _ *models.Tweet) error { return nil },
		replaceLikesFn: func(_ context.Context, _ uint, _ []uint) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}
