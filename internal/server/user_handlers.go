package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateMeRequest is the payload for self-service profile updates. Fields
// outside this set (is_staff, is_superuser, image) are dropped by the parser
// and can never be changed here.
type UpdateMeRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetMe returns the caller's profile with follows, followers and liked tweets.
func (s *Server) GetMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(profile)
}

// UpdateMe applies partial changes to the caller's own account. PUT and PATCH
// behave identically; omitted fields stay as they are.
func (s *Server) UpdateMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	profile, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(profile)
}
