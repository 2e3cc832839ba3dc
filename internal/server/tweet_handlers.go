package server

import (
	"time"

	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTweetRequest is the payload for posting a tweet. There is no owner
// field; the authenticated caller always owns what they post.
type CreateTweetRequest struct {
	TweetText string `json:"tweet_text"`
}

// UpdateTweetRequest is the payload for PATCH and PUT on a tweet. Nil fields
// were not supplied. Likes entries carry only ids; any other attribute sent
// for a liker is ignored.
type UpdateTweetRequest struct {
	TweetText *string            `json:"tweet_text"`
	Likes     *[]service.LikeRef `json:"likes"`
}

// TweetResponse is the list projection of a tweet.
type TweetResponse struct {
	ID        uint      `json:"id"`
	TweetText string    `json:"tweet_text"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

// TweetDetailResponse adds the users who liked the tweet.
type TweetDetailResponse struct {
	TweetResponse
	Likes []models.UserRef `json:"likes"`
}

func toTweetResponse(t *models.Tweet) TweetResponse {
	return TweetResponse{
		ID:        t.ID,
		TweetText: t.TweetText,
		Created:   t.CreatedAt,
		Updated:   t.UpdatedAt,
	}
}

func toTweetDetailResponse(t *models.Tweet) TweetDetailResponse {
	likes := make([]models.UserRef, 0, len(t.Likes))
	for i := range t.Likes {
		likes = append(likes, t.Likes[i].User.Ref())
	}
	return TweetDetailResponse{
		TweetResponse: toTweetResponse(t),
		Likes:         likes,
	}
}

// ListTweets returns the caller's tweets, newest first.
func (s *Server) ListTweets(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	tweets, err := s.tweetService.List(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	resp := make([]TweetResponse, 0, len(tweets))
	for i := range tweets {
		resp = append(resp, toTweetResponse(&tweets[i]))
	}
	return c.JSON(resp)
}

// GetTweet returns one of the caller's tweets with its likes.
// A tweet owned by someone else is indistinguishable from a missing one.
func (s *Server) GetTweet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tweet, err := s.tweetService.Get(c.UserContext(), userID, tweetID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toTweetDetailResponse(tweet))
}

// CreateTweet posts a new tweet owned by the caller.
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req CreateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Create(c.UserContext(), userID, req.TweetText)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Tweet created", "tweet_id", tweet.ID)
	return c.Status(fiber.StatusCreated).JSON(toTweetDetailResponse(tweet))
}

// UpdateTweet applies a partial update to one of the caller's tweets.
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	return s.updateTweet(c, true)
}

// ReplaceTweet applies a full update; the text is required.
func (s *Server) ReplaceTweet(c *fiber.Ctx) error {
	return s.updateTweet(c, false)
}

func (s *Server) updateTweet(c *fiber.Ctx, partial bool) error {
	userID := c.Locals("userID").(uint)

	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req UpdateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.Update(c.UserContext(), service.UpdateTweetInput{
		CallerID:  userID,
		TweetID:   tweetID,
		TweetText: req.TweetText,
		Likes:     req.Likes,
		Partial:   partial,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toTweetDetailResponse(tweet))
}

// DeleteTweet removes one of the caller's tweets and its like edges.
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tweetService.Delete(c.UserContext(), userID, tweetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Tweet deleted", "tweet_id", tweetID)
	return c.SendStatus(fiber.StatusNoContent)
}
