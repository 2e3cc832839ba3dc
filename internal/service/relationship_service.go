package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// RelationshipService provides follow-graph business logic.
type RelationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{followRepo: followRepo, userRepo: userRepo}
}

// Follow adds the userID -> targetID edge. Following an already-followed user
// succeeds without effect. Fails with NotFound when the target does not exist.
func (s *RelationshipService) Follow(ctx context.Context, userID, targetID uint) error {
	if _, err := s.userRepo.GetRefByID(ctx, targetID); err != nil {
		return err
	}
	return s.followRepo.AddEdge(ctx, userID, targetID)
}

// Unfollow removes the userID -> targetID edge. Removing an edge that was
// never there succeeds without effect. Fails with NotFound when the target
// does not exist.
func (s *RelationshipService) Unfollow(ctx context.Context, userID, targetID uint) error {
	if _, err := s.userRepo.GetRefByID(ctx, targetID); err != nil {
		return err
	}
	return s.followRepo.RemoveEdge(ctx, userID, targetID)
}

// ListFollows returns the users userID follows, most recently followed first.
func (s *RelationshipService) ListFollows(ctx context.Context, userID uint) ([]models.UserRef, error) {
	users, err := s.followRepo.ListFollows(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs := make([]models.UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, users[i].Ref())
	}
	return refs, nil
}

// ListFollowers returns the inverse view of the same edges.
func (s *RelationshipService) ListFollowers(ctx context.Context, userID uint) ([]models.UserRef, error) {
	users, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs := make([]models.UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, users[i].Ref())
	}
	return refs, nil
}
