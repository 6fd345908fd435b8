package service

import (
	"context"
	"strings"

	"bookery/internal/models"
	"bookery/internal/observability"
	"bookery/internal/repository"
)

// OrderService provides checkout business logic.
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	bookRepo  repository.BookRepository
}

// NewOrderService returns a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	bookRepo repository.BookRepository,
) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo, bookRepo: bookRepo}
}

// ShippingInput is the delivery address collected at checkout.
type ShippingInput struct {
	Name    string
	Address string
	City    string
	Zip     string
	Country string
}

func (in ShippingInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("Shipping name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return models.NewValidationError("Shipping address is required")
	}
	if strings.TrimSpace(in.City) == "" {
		return models.NewValidationError("Shipping city is required")
	}
	if strings.TrimSpace(in.Country) == "" {
		return models.NewValidationError("Shipping country is required")
	}
	return nil
}

// Checkout turns the user's cart into an order. Item prices are snapshotted
// from the current catalog; the cart is cleared in the same transaction that
// creates the order.
func (s *OrderService) Checkout(ctx context.Context, userID uint, shipping ShippingInput) (*models.Order, error) {
	if err := shipping.validate(); err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, models.NewValidationError("Cart is empty")
	}

	order := &models.Order{
		UserID:          userID,
		ShippingName:    strings.TrimSpace(shipping.Name),
		ShippingAddress: strings.TrimSpace(shipping.Address),
		ShippingCity:    strings.TrimSpace(shipping.City),
		ShippingZip:     strings.TrimSpace(shipping.Zip),
		ShippingCountry: strings.TrimSpace(shipping.Country),
	}
	for _, line := range lines {
		book, err := s.bookRepo.GetByID(ctx, line.BookID)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, models.OrderItem{
			BookID:   book.ID,
			Quantity: line.Quantity,
			Price:    book.Price,
		})
		order.Total += book.Price * float64(line.Quantity)
	}

	if err := s.orderRepo.CreateFromCart(ctx, order); err != nil {
		return nil, err
	}
	observability.CheckoutsTotal.Inc()
	return order, nil
}

// GetOrder returns one of the user's orders.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	return s.orderRepo.GetByIDForUser(ctx, orderID, userID)
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
