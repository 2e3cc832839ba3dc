package service

import (
	"context"
	"strings"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// TweetService provides owner-scoped tweet business logic. Every operation
// takes the caller's id; a tweet owned by someone else behaves exactly like a
// tweet that does not exist.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

// LikeRef identifies a liker by id only. Any other attribute supplied in a
// nested likes payload is discarded before it reaches this type, so a liker's
// own record can never be mutated through a tweet update.
type LikeRef struct {
	ID uint `json:"id"`
}

// UpdateTweetInput carries a tweet update. TweetText being nil means "not
// supplied"; Likes being nil means the like set is untouched. Partial selects
// PATCH semantics; a full update requires the text to be present.
type UpdateTweetInput struct {
	CallerID  uint
	TweetID   uint
	TweetText *string
	Likes     *[]LikeRef
	Partial   bool
}

// NewTweetService returns a new TweetService.
func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

// List returns the caller's tweets, newest first.
func (s *TweetService) List(ctx context.Context, callerID uint) ([]models.Tweet, error) {
	return s.tweetRepo.ListByOwner(ctx, callerID)
}

// Get returns a single tweet owned by the caller.
func (s *TweetService) Get(ctx context.Context, callerID, tweetID uint) (*models.Tweet, error) {
	return s.tweetRepo.GetByIDForOwner(ctx, tweetID, callerID)
}

// Create stores a new tweet owned by the caller. Any owner supplied by the
// request never reaches this method; the caller is the owner.
func (s *TweetService) Create(ctx context.Context, callerID uint, text string) (*models.Tweet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("tweet_text is required")
	}

	tweet := &models.Tweet{
		TweetText: text,
		UserID:    callerID,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Update modifies a tweet owned by the caller. Ownership is immutable: the
// input has no owner field at all. The updated timestamp refreshes on success.
func (s *TweetService) Update(ctx context.Context, in UpdateTweetInput) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByIDForOwner(ctx, in.TweetID, in.CallerID)
	if err != nil {
		return nil, err
	}

	if !in.Partial && in.TweetText == nil {
		return nil, models.NewValidationError("tweet_text is required")
	}

	if in.TweetText != nil {
		if strings.TrimSpace(*in.TweetText) == "" {
			return nil, models.NewValidationError("tweet_text must not be empty")
		}
		tweet.TweetText = *in.TweetText
	}
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}

	if in.Likes != nil {
		userIDs := make([]uint, 0, len(*in.Likes))
		for _, ref := range *in.Likes {
			if _, err := s.userRepo.GetRefByID(ctx, ref.ID); err != nil {
				if models.CodeOf(err) == models.CodeNotFound {
					return nil, models.NewValidationError("likes references an unknown user")
				}
				return nil, err
			}
			userIDs = append(userIDs, ref.ID)
		}
		if err := s.tweetRepo.ReplaceLikes(ctx, in.TweetID, userIDs); err != nil {
			return nil, err
		}
	}

	return s.tweetRepo.GetByIDForOwner(ctx, in.TweetID, in.CallerID)
}

// Delete removes a tweet owned by the caller along with its like edges.
func (s *TweetService) Delete(ctx context.Context, callerID, tweetID uint) error {
	if _, err := s.tweetRepo.GetByIDForOwner(ctx, tweetID, callerID); err != nil {
		return err
	}
	return s.tweetRepo.Delete(ctx, tweetID)
}
