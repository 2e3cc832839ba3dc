package server

import (
	"io"

	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadProfileImage replaces the caller's profile picture. Expects a
// multipart form with the file under the "image" field.
func (s *Server) UploadProfileImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	user, err := s.imageService.Upload(c.UserContext(), service.UploadProfileImageInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Profile image uploaded", "image", user.Image)
	return c.JSON(fiber.Map{"id": user.ID, "image": user.Image})
}

// DeleteProfileImage resets the caller's picture to the default placeholder.
func (s *Server) DeleteProfileImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.imageService.Delete(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"id": user.ID, "image": user.Image})
}
