// Package service implements the business logic of the application.
package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account registration and profile management.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tweetRepo  repository.TweetRepository
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateProfileInput carries the self-service profile fields. Empty fields are
// left unchanged. Flags like is_staff and is_active are deliberately not here;
// they can only be set through an administrative path.
type UpdateProfileInput struct {
	UserID   uint
	Username string
	Email    string
	Password string
	Image    string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, tweetRepo repository.TweetRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo, tweetRepo: tweetRepo}
}

// Register creates a regular user account. The email domain is lowercased
// before any uniqueness check or write.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.createUser(ctx, in, false)
}

// CreateSuperuser creates an account with staff and superuser flags set.
func (s *UserService) CreateSuperuser(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.createUser(ctx, in, true)
}

func (s *UserService) createUser(ctx context.Context, in RegisterInput, super bool) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	email := validation.NormalizeEmail(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Email already taken")
	}
	existing, err = s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       email,
		Password:    string(hashed),
		IsActive:    true,
		IsStaff:     super,
		IsSuperuser: super,
		Image:       models.DefaultProfileImage,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email and password pair and returns the account.
// The failure reason is never distinguished to the caller: a missing account,
// a wrong password and a deactivated account all produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetUserByID returns the full user record.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile assembles the full user projection with follows, followers and
// liked tweets.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	follows, err := s.followRepo.ListFollows(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := s.tweetRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Image:     user.Image,
		Follows:   make([]models.UserRef, 0, len(follows)),
		Followers: make([]models.UserRef, 0, len(followers)),
		Likes:     make([]models.TweetRef, 0, len(liked)),
	}
	for i := range follows {
		profile.Follows = append(profile.Follows, follows[i].Ref())
	}
	for i := range followers {
		profile.Followers = append(profile.Followers, followers[i].Ref())
	}
	for i := range liked {
		profile.Likes = append(profile.Likes, liked[i].Ref())
	}
	return profile, nil
}

// UpdateProfile applies the permitted scalar fields. A supplied password is
// re-hashed; anything outside the allow-list never reaches the record.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = validation.NormalizeEmail(in.Email)
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}
	if in.Image != "" {
		user.Image = in.Image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
