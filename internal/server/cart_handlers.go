package server

import (
	"bookery/internal/models"
	"bookery/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCart handles GET /user/:id/cart
func (s *Server) GetCart(c *fiber.Ctx) error {
	items, err := s.cartService.ListItems(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// AddCartItem handles POST /user/:id/cart. Adding a book already in the cart
// increments the line; the status distinguishes 201 (new line) from 200.
func (s *Server) AddCartItem(c *fiber.Ctx) error {
	var req struct {
		BookID   uint `json:"book_id"`
		Quantity int  `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, created, err := s.cartService.AddItem(c.UserContext(), currentUserID(c), req.BookID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(item)
}

// UpdateCartItem handles PATCH /user/:id/cart/:itemId
func (s *Server) UpdateCartItem(c *fiber.Ctx) error {
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.cartService.UpdateQuantity(c.UserContext(), currentUserID(c), itemID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// RemoveCartItem handles DELETE /user/:id/cart/:itemId
func (s *Server) RemoveCartItem(c *fiber.Ctx) error {
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}
	if err := s.cartService.RemoveItem(c.UserContext(), currentUserID(c), itemID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}

// Checkout handles POST /user/:id/checkout
func (s *Server) Checkout(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	order, err := s.orderService.Checkout(c.UserContext(), currentUserID(c), service.ShippingInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Zip:     req.Zip,
		Country: req.Country,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrders handles GET /user/:id/orders
func (s *Server) GetOrders(c *fiber.Ctx) error {
	orders, err := s.orderService.ListOrders(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// GetOrder handles GET /user/:id/orders/:orderId
func (s *Server) GetOrder(c *fiber.Ctx) error {
	orderID, err := s.parseID(c, "orderId")
	if err != nil {
		return nil
	}
	order, err := s.orderService.GetOrder(c.UserContext(), currentUserID(c), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
