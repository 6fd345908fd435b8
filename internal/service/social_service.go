package service

import (
	"context"
	"errors"

	"bookery/internal/models"
	"bookery/internal/repository"
)

// SocialService provides follow and block business logic.
type SocialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(socialRepo repository.SocialRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{socialRepo: socialRepo, userRepo: userRepo}
}

// Follow makes the caller follow another user.
func (s *SocialService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}
	existing, err := s.socialRepo.GetFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewValidationError("Already following this user")
	}
	err = s.socialRepo.CreateFollow(ctx, &models.Follow{FollowerID: followerID, FollowingID: followingID})
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
		return models.NewValidationError("Already following this user")
	}
	return err
}

// Unfollow removes the caller's follow of another user.
func (s *SocialService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.socialRepo.DeleteFollow(ctx, followerID, followingID)
}

// ListFollowing returns the users the caller follows.
func (s *SocialService) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	return s.socialRepo.ListFollowing(ctx, followerID)
}

// Block makes the caller block another user. A duplicate block is an error,
// mirroring Follow.
func (s *SocialService) Block(ctx context.Context, blockerID, blockedID uint) error {
	if blockerID == blockedID {
		return models.NewValidationError("You cannot block yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, blockedID); err != nil {
		return err
	}
	existing, err := s.socialRepo.GetBlock(ctx, blockerID, blockedID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewValidationError("Already blocking this user")
	}
	err = s.socialRepo.CreateBlock(ctx, &models.Block{BlockerID: blockerID, BlockedID: blockedID})
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
		return models.NewValidationError("Already blocking this user")
	}
	return err
}

// Unblock removes the caller's own block of another user. A block placed by
// the other user is untouched.
func (s *SocialService) Unblock(ctx context.Context, blockerID, blockedID uint) error {
	return s.socialRepo.DeleteBlock(ctx, blockerID, blockedID)
}

// ListBlocks returns the users the caller has blocked.
func (s *SocialService) ListBlocks(ctx context.Context, blockerID uint) ([]models.Block, error) {
	return s.socialRepo.ListBlocks(ctx, blockerID)
}
