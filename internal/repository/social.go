package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// SocialRepository defines the interface for follow and block data operations
type SocialRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow) error
	GetFollow(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	DeleteFollow(ctx context.Context, followerID, followingID uint) error
	ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error)
	ListFollowerIDs(ctx context.Context, followingID uint) ([]uint, error)

	CreateBlock(ctx context.Context, block *models.Block) error
	GetBlock(ctx context.Context, blockerID, blockedID uint) (*models.Block, error)
	BlockExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error)
	DeleteBlock(ctx context.Context, blockerID, blockedID uint) error
	ListBlocks(ctx context.Context, blockerID uint) ([]models.Block, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new social repository
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreateFollow(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetFollow returns (nil, nil) when the pair does not exist.
func (r *socialRepository) GetFollow(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *socialRepository) DeleteFollow(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Follow", followingID)
	}
	return nil
}

func (r *socialRepository) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Preload("Following").
		Find(&follows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *socialRepository) ListFollowerIDs(ctx context.Context, followingID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", followingID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *socialRepository) CreateBlock(ctx context.Context, block *models.Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("User is already blocked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetBlock returns (nil, nil) when the directed pair does not exist.
func (r *socialRepository) GetBlock(ctx context.Context, blockerID, blockedID uint) (*models.Block, error) {
	var block models.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &block, nil
}

// BlockExistsBetween checks both directions; a block either way suppresses
// interaction between the pair.
func (r *socialRepository) BlockExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userID1, userID2, userID2, userID1).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *socialRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) error {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Block", blockedID)
	}
	return nil
}

func (r *socialRepository) ListBlocks(ctx context.Context, blockerID uint) ([]models.Block, error) {
	var blocks []models.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ?", blockerID).
		Preload("Blocked").
		Find(&blocks).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return blocks, nil
}
