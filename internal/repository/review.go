package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	DeleteForUser(ctx context.Context, bookID, userID uint) error
	DeleteByID(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.Review, error)
	ListByBook(ctx context.Context, bookID uint, limit, offset int) ([]models.Review, error)

	CreateComment(ctx context.Context, comment *models.ReviewComment) error
	GetCommentByID(ctx context.Context, id uint) (*models.ReviewComment, error)
	ListComments(ctx context.Context, reviewID uint) ([]models.ReviewComment, error)
	DeleteCommentByID(ctx context.Context, id uint) error

	GetLike(ctx context.Context, reviewID, userID uint) (*models.ReviewLike, error)
	CreateLike(ctx context.Context, like *models.ReviewLike) error
	UpdateLike(ctx context.Context, like *models.ReviewLike) error
	DeleteLike(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Review already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) DeleteForUser(ctx context.Context, bookID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Delete(&models.Review{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Review", bookID)
	}
	return nil
}

func (r *reviewRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Review", id)
	}
	return nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("updated_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListByBook(ctx context.Context, bookID uint, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) CreateComment(ctx context.Context, comment *models.ReviewComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) GetCommentByID(ctx context.Context, id uint) (*models.ReviewComment, error) {
	var comment models.ReviewComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *reviewRepository) ListComments(ctx context.Context, reviewID uint) ([]models.ReviewComment, error) {
	var comments []models.ReviewComment
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Preload("User").
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *reviewRepository) DeleteCommentByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewComment{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}

// GetLike returns (nil, nil) when the user has not reacted to the review.
func (r *reviewRepository) GetLike(ctx context.Context, reviewID, userID uint) (*models.ReviewLike, error) {
	var like models.ReviewLike
	err := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *reviewRepository) CreateLike(ctx context.Context, like *models.ReviewLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Reaction already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) UpdateLike(ctx context.Context, like *models.ReviewLike) error {
	if err := r.db.WithContext(ctx).Save(like).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) DeleteLike(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewLike{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Reaction", id)
	}
	return nil
}
