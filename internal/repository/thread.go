package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// ThreadRepository defines the interface for forum data operations
type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	GetByID(ctx context.Context, id uint) (*models.Thread, error)
	Update(ctx context.Context, thread *models.Thread) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Thread, error)

	CreateComment(ctx context.Context, comment *models.ThreadComment) error
	GetCommentByID(ctx context.Context, id uint) (*models.ThreadComment, error)
	DeleteCommentByID(ctx context.Context, id uint) error

	CreateFollow(ctx context.Context, follow *models.ThreadFollow) error
	GetFollow(ctx context.Context, userID, threadID uint) (*models.ThreadFollow, error)
	DeleteFollow(ctx context.Context, userID, threadID uint) error
	ListFollowerIDs(ctx context.Context, threadID uint) ([]uint, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new thread repository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	// The author's ThreadFollow is created in the same transaction so a thread
	// can never exist without its author subscribed.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}
		return tx.Create(&models.ThreadFollow{
			UserID:   thread.UserID,
			ThreadID: thread.ID,
		}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) GetByID(ctx context.Context, id uint) (*models.Thread, error) {
	var thread models.Thread
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Comments.User").
		First(&thread, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &thread, nil
}

func (r *threadRepository) Update(ctx context.Context, thread *models.Thread) error {
	if err := r.db.WithContext(ctx).Save(thread).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Thread{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Thread", id)
	}
	return nil
}

func (r *threadRepository) List(ctx context.Context, limit, offset int) ([]models.Thread, error) {
	var threads []models.Thread
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&threads).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return threads, nil
}

func (r *threadRepository) CreateComment(ctx context.Context, comment *models.ThreadComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) GetCommentByID(ctx context.Context, id uint) (*models.ThreadComment, error) {
	var comment models.ThreadComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *threadRepository) DeleteCommentByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ThreadComment{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Thread comment", id)
	}
	return nil
}

func (r *threadRepository) CreateFollow(ctx context.Context, follow *models.ThreadFollow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Already following this thread")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetFollow returns (nil, nil) when the user does not follow the thread.
func (r *threadRepository) GetFollow(ctx context.Context, userID, threadID uint) (*models.ThreadFollow, error) {
	var follow models.ThreadFollow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND thread_id = ?", userID, threadID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *threadRepository) DeleteFollow(ctx context.Context, userID, threadID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND thread_id = ?", userID, threadID).
		Delete(&models.ThreadFollow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Thread follow", threadID)
	}
	return nil
}

func (r *threadRepository) ListFollowerIDs(ctx context.Context, threadID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ThreadFollow{}).
		Where("thread_id = ?", threadID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
