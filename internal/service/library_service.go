package service

import (
	"context"
	"errors"

	"bookery/internal/models"
	"bookery/internal/repository"
)

// FavouriteService provides bookmark business logic.
type FavouriteService struct {
	favRepo  repository.FavouriteRepository
	bookRepo repository.BookRepository
}

// NewFavouriteService returns a new FavouriteService.
func NewFavouriteService(favRepo repository.FavouriteRepository, bookRepo repository.BookRepository) *FavouriteService {
	return &FavouriteService{favRepo: favRepo, bookRepo: bookRepo}
}

// Add bookmarks a book. Re-adding returns the existing row; the returned bool
// is true only when a new row was created.
func (s *FavouriteService) Add(ctx context.Context, userID, bookID uint) (*models.FavouriteBook, bool, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, false, err
	}

	existing, err := s.favRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	fav := &models.FavouriteBook{UserID: userID, BookID: bookID}
	if err := s.favRepo.Create(ctx, fav); err != nil {
		// Lost a race with a concurrent add; the row exists now.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			existing, getErr := s.favRepo.GetByUserAndBook(ctx, userID, bookID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return fav, true, nil
}

// Remove deletes the caller's bookmark for a book.
func (s *FavouriteService) Remove(ctx context.Context, userID, bookID uint) error {
	return s.favRepo.DeleteForUser(ctx, bookID, userID)
}

// List returns the user's bookmarks, newest first.
func (s *FavouriteService) List(ctx context.Context, userID uint) ([]models.FavouriteBook, error) {
	return s.favRepo.ListByUser(ctx, userID)
}

// RatingService provides stars/reading-status business logic.
type RatingService struct {
	ratingRepo repository.RatingRepository
	bookRepo   repository.BookRepository
}

// NewRatingService returns a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, bookRepo repository.BookRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, bookRepo: bookRepo}
}

// UpsertRatingInput carries a rating submission. Stars is optional; Status is required.
type UpsertRatingInput struct {
	UserID uint
	BookID uint
	Stars  *int
	Status models.ReadingStatus
}

// Upsert creates or overwrites the caller's rating for a book. The returned
// bool is true when a new row was created.
func (s *RatingService) Upsert(ctx context.Context, in UpsertRatingInput) (*models.Rating, bool, error) {
	if !in.Status.Valid() {
		return nil, false, models.NewValidationError("Status must be one of COMPLETED, WANT_TO_READ, CURRENTLY_READING, DNF")
	}
	if in.Stars != nil && (*in.Stars < 1 || *in.Stars > 5) {
		return nil, false, models.NewValidationError("Stars must be between 1 and 5")
	}
	if _, err := s.bookRepo.GetByID(ctx, in.BookID); err != nil {
		return nil, false, err
	}

	existing, err := s.ratingRepo.GetByUserAndBook(ctx, in.UserID, in.BookID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Stars = in.Stars
		existing.Status = in.Status
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	rating := &models.Rating{
		UserID: in.UserID,
		BookID: in.BookID,
		Stars:  in.Stars,
		Status: in.Status,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			// Concurrent upsert created the row first; overwrite it.
			return s.overwriteExisting(ctx, in)
		}
		return nil, false, err
	}
	return rating, true, nil
}

func (s *RatingService) overwriteExisting(ctx context.Context, in UpsertRatingInput) (*models.Rating, bool, error) {
	existing, err := s.ratingRepo.GetByUserAndBook(ctx, in.UserID, in.BookID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, models.NewInternalError(errors.New("rating vanished during upsert retry"))
	}
	existing.Stars = in.Stars
	existing.Status = in.Status
	if err := s.ratingRepo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Get returns the caller's rating for a book.
func (s *RatingService) Get(ctx context.Context, userID, bookID uint) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, models.NewNotFoundError("Rating", bookID)
	}
	return rating, nil
}

// Delete removes the caller's rating for a book.
func (s *RatingService) Delete(ctx context.Context, userID, bookID uint) error {
	return s.ratingRepo.DeleteForUser(ctx, bookID, userID)
}

// List returns the user's ratings, most recently updated first.
func (s *RatingService) List(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListByUser(ctx, userID)
}
