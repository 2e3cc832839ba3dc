package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"chirp/internal/config"
	"chirp/internal/models"
	"chirp/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultImageUploadDir       = "/tmp/chirp/uploads/images"
	DefaultImageMaxUploadSizeMB = 5
)

var imageExtByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadProfileImageInput carries an uploaded profile picture.
type UploadProfileImageInput struct {
	UserID      uint
	Filename    string
	ContentType string
	Content     []byte
}

// ProfileImageService stores profile pictures on disk and keeps the user's
// image reference in sync.
type ProfileImageService struct {
	userRepo           repository.UserRepository
	uploadDir          string
	maxUploadSizeBytes int64
}

// NewProfileImageService returns a new ProfileImageService.
func NewProfileImageService(userRepo repository.UserRepository, cfg *config.Config) *ProfileImageService {
	uploadDir := DefaultImageUploadDir
	maxUploadSizeMB := DefaultImageMaxUploadSizeMB

	if cfg != nil {
		if cfg.ImageUploadDir != "" {
			uploadDir = cfg.ImageUploadDir
		}
		if cfg.ImageMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.ImageMaxUploadSizeMB
		}
	}

	return &ProfileImageService{
		userRepo:           userRepo,
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// Upload validates and stores the picture, then points the user's image
// reference at it. The previous upload, if any, is removed best-effort.
func (s *ProfileImageService) Upload(ctx context.Context, in UploadProfileImageInput) (*models.User, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detected := http.DetectContentType(in.Content)
	ext, ok := imageExtByMime[detected]
	if !ok {
		return nil, models.NewValidationError("Invalid image type")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	name := uuid.New().String() + ext
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, name), in.Content, 0o644); err != nil {
		return nil, models.NewInternalError(err)
	}

	previous := user.Image
	user.Image = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		_ = os.Remove(filepath.Join(s.uploadDir, name))
		return nil, err
	}
	s.removeStored(previous)

	return user, nil
}

// Delete clears the user's picture back to the default placeholder.
func (s *ProfileImageService) Delete(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.Image
	user.Image = models.DefaultProfileImage
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.removeStored(previous)

	return user, nil
}

// removeStored deletes an uploaded file, never the shared placeholder.
func (s *ProfileImageService) removeStored(name string) {
	if name == "" || name == models.DefaultProfileImage {
		return
	}
	_ = os.Remove(filepath.Join(s.uploadDir, filepath.Base(name)))
}
