package server

import (
	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListFollowings returns the users the caller follows.
func (s *Server) ListFollowings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	follows, err := s.relationshipService.ListFollows(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(follows)
}

// FollowUser adds a follow edge from the caller to the target user.
// Following someone already followed is a no-op and still succeeds.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.relationshipService.Follow(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "User followed", "target_id", targetID)
	return c.JSON(fiber.Map{"status": "following"})
}

// UnfollowUser removes the caller's follow edge to the target user.
// Unfollowing someone never followed is a no-op and still succeeds.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.relationshipService.Unfollow(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "User unfollowed", "target_id", targetID)
	return c.JSON(fiber.Map{"status": "not_following"})
}
