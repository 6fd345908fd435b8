package service

import (
	"context"
	"errors"

	"bookery/internal/models"
	"bookery/internal/repository"
)

// CartService provides cart business logic.
type CartService struct {
	cartRepo repository.CartRepository
	bookRepo repository.BookRepository
}

// NewCartService returns a new CartService.
func NewCartService(cartRepo repository.CartRepository, bookRepo repository.BookRepository) *CartService {
	return &CartService{cartRepo: cartRepo, bookRepo: bookRepo}
}

// AddItem adds quantity of a book to the user's cart. An existing line for the
// same (user, book) is incremented, never overwritten. The returned bool is
// true when a new line was created.
func (s *CartService) AddItem(ctx context.Context, userID, bookID uint, quantity int) (*models.CartItem, bool, error) {
	if quantity < 1 {
		return nil, false, models.NewValidationError("Quantity must be at least 1")
	}
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, false, err
	}

	existing, err := s.cartRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	item := &models.CartItem{UserID: userID, BookID: bookID, Quantity: quantity}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		// A concurrent add hit the unique constraint first; retry as an increment.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			return s.addToExisting(ctx, userID, bookID, quantity)
		}
		return nil, false, err
	}
	return item, true, nil
}

func (s *CartService) addToExisting(ctx context.Context, userID, bookID uint, quantity int) (*models.CartItem, bool, error) {
	existing, err := s.cartRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, models.NewInternalError(errors.New("cart line vanished during upsert retry"))
	}
	existing.Quantity += quantity
	if err := s.cartRepo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// UpdateQuantity sets the quantity of one of the user's cart lines.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, models.NewValidationError("Quantity must be at least 1")
	}
	item, err := s.cartRepo.GetByIDForUser(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one of the user's cart lines. Removing a line that does
// not belong to the user is NotFound, not a silent success.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.cartRepo.DeleteForUser(ctx, itemID, userID)
}

// ListItems returns the user's cart, oldest line first.
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}
