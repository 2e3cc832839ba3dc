package service

import (
	"context"
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipService_Follow(t *testing.T) {
	t.Parallel()

	t.Run("adds the edge for an existing target", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		var gotFollower, gotFollowed uint
		followRepo.addEdgeFn = func(_ context.Context, followerID, followedID uint) error {
			gotFollower, gotFollowed = followerID, followedID
			return nil
		}
		svc := NewRelationshipService(followRepo, noopUserRepo())

		require.NoError(t, svc.Follow(context.Background(), 1, 2))
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotFollowed)
	})

	t.Run("missing target fails before the edge write", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getRefByIDFn = func(_ context.Context, id uint) (*models.UserRef, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		followRepo := noopFollowRepo()
		addCalled := false
		followRepo.addEdgeFn = func(_ context.Context, _, _ uint) error {
			addCalled = true
			return nil
		}
		svc := NewRelationshipService(followRepo, userRepo)

		err := svc.Follow(context.Background(), 1, 999)
		assertNotFoundError(t, err)
		assert.False(t, addCalled)
	})
}

func TestRelationshipService_Unfollow(t *testing.T) {
	t.Parallel()

	t.Run("removes the edge", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		var gotFollower, gotFollowed uint
		followRepo.removeEdgeFn = func(_ context.Context, followerID, followedID uint) error {
			gotFollower, gotFollowed = followerID, followedID
			return nil
		}
		svc := NewRelationshipService(followRepo, noopUserRepo())

		require.NoError(t, svc.Unfollow(context.Background(), 1, 2))
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotFollowed)
	})

	t.Run("missing target fails", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getRefByIDFn = func(_ context.Context, id uint) (*models.UserRef, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewRelationshipService(noopFollowRepo(), userRepo)

		err := svc.Unfollow(context.Background(), 1, 999)
		assertNotFoundError(t, err)
	})
}

func TestRelationshipService_Lists(t *testing.T) {
	t.Parallel()

	followRepo := noopFollowRepo()
	followRepo.listFollowsFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{
			{ID: 3, Username: "charlie", Email: "charlie@example.com"},
			{ID: 2, Username: "bob", Email: "bob@example.com"},
		}, nil
	}
	followRepo.listFollowersFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{{ID: 5, Username: "eve", Email: "eve@example.com"}}, nil
	}
	svc := NewRelationshipService(followRepo, noopUserRepo())

	follows, err := svc.ListFollows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, follows, 2)
	assert.Equal(t, models.UserRef{ID: 3, Username: "charlie", Email: "charlie@example.com"}, follows[0])

	followers, err := svc.ListFollowers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "eve", followers[0].Username)
}
