package service

import (
	"context"
	"errors"
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores a hashed password and defaults", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		var created *models.User
		userRepo.createFn = func(_ context.Context, u *models.User) error {
			created = u
			u.ID = 1
			return nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		user, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "testpass123",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEqual(t, "testpass123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpass123")))
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
		assert.Equal(t, models.DefaultProfileImage, user.Image)
	})

	t.Run("lowercases the email domain only", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.createFn = func(_ context.Context, u *models.User) error { return nil }
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		user, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "Test@EXAMPLE.com",
			Password: "testpass123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Test@example.com", user.Email)
	})

	t.Run("rejects an empty email", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopTweetRepo())
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "",
			Password: "testpass123",
		})
		assertValidationError(t, err)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopTweetRepo())
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "pw",
		})
		assertValidationError(t, err)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email}, nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "testpass123",
		})
		assertValidationError(t, err)
	})

	t.Run("uniqueness check sees the normalized email", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		var checked string
		userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			checked = email
			return nil, nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "testuser",
			Email:    "test@EXAMPLE.COM",
			Password: "testpass123",
		})
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", checked)
	})
}

func TestUserService_CreateSuperuser(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

	user, err := svc.CreateSuperuser(context.Background(), RegisterInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "adminpass",
	})
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsActive)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.MinCost)
	require.NoError(t, err)

	account := func() *models.User {
		return &models.User{ID: 1, Email: "test@example.com", Password: string(hash), IsActive: true}
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return account(), nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		user, err := svc.Authenticate(context.Background(), "test@example.com", "testpass123")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("email lookup is domain-insensitive", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			if email != "test@example.com" {
				return nil, nil
			}
			return account(), nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		_, err := svc.Authenticate(context.Background(), "test@EXAMPLE.COM", "testpass123")
		assert.NoError(t, err)
	})

	t.Run("wrong password yields the generic error", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return account(), nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		_, err := svc.Authenticate(context.Background(), "test@example.com", "wrong")
		assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopTweetRepo())

		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "testpass123")
		assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("inactive account yields the same generic error", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			u := account()
			u.IsActive = false
			return u, nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		_, err := svc.Authenticate(context.Background(), "test@example.com", "testpass123")
		assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "me", Email: "me@example.com", Image: "default.png"}, nil
	}
	followRepo := noopFollowRepo()
	followRepo.listFollowsFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{{ID: 3, Username: "c"}, {ID: 2, Username: "b"}}, nil
	}
	followRepo.listFollowersFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{{ID: 4, Username: "d"}}, nil
	}
	tweetRepo := noopTweetRepo()
	tweetRepo.listLikedByFn = func(_ context.Context, _ uint) ([]models.Tweet, error) {
		return []models.Tweet{{ID: 9, TweetText: "liked"}}, nil
	}
	svc := NewUserService(userRepo, followRepo, tweetRepo)

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "me", profile.Username)
	require.Len(t, profile.Follows, 2)
	assert.Equal(t, uint(3), profile.Follows[0].ID)
	require.Len(t, profile.Followers, 1)
	assert.Equal(t, "d", profile.Followers[0].Username)
	require.Len(t, profile.Likes, 1)
	assert.Equal(t, "liked", profile.Likes[0].TweetText)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("empty fields stay unchanged", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "old", Email: "old@example.com", Password: "hash"}, nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:   1,
			Username: "newname",
		})
		require.NoError(t, err)
		assert.Equal(t, "newname", user.Username)
		assert.Equal(t, "old@example.com", user.Email)
		assert.Equal(t, "hash", user.Password)
	})

	t.Run("supplied password is re-hashed", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Password: "oldhash"}, nil
		}
		var saved *models.User
		userRepo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:   1,
			Password: "newpass123",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotEqual(t, "newpass123", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("newpass123")))
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopTweetRepo())
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID: 1,
			Email:  "not-an-email",
		})
		assertValidationError(t, err)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("db connection error")
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, repoErr
		}
		svc := NewUserService(userRepo, noopFollowRepo(), noopTweetRepo())
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "new"})
		assert.ErrorIs(t, err, repoErr)
	})
}
