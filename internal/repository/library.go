package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// FavouriteRepository defines the interface for favourite-book data operations
type FavouriteRepository interface {
	GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.FavouriteBook, error)
	Create(ctx context.Context, fav *models.FavouriteBook) error
	DeleteForUser(ctx context.Context, bookID, userID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.FavouriteBook, error)
}

type favouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository creates a new favourite repository
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.FavouriteBook, error) {
	var fav models.FavouriteBook
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &fav, nil
}

func (r *favouriteRepository) Create(ctx context.Context, fav *models.FavouriteBook) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Book is already a favourite")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favouriteRepository) DeleteForUser(ctx context.Context, bookID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Delete(&models.FavouriteBook{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Favourite", bookID)
	}
	return nil
}

func (r *favouriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.FavouriteBook, error) {
	var favs []models.FavouriteBook
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return favs, nil
}

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Rating, error)
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	DeleteForUser(ctx context.Context, bookID, userID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Rating already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Save(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) DeleteForUser(ctx context.Context, bookID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Rating", bookID)
	}
	return nil
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}
