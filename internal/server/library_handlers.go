package server

import (
	"bookery/internal/models"
	"bookery/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFavourites handles GET /user/:id/favorites
func (s *Server) GetFavourites(c *fiber.Ctx) error {
	favs, err := s.favService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(favs)
}

// AddFavourite handles POST /user/:id/favorites. Re-adding an existing
// favourite is a no-op answered with 200.
func (s *Server) AddFavourite(c *fiber.Ctx) error {
	var req struct {
		BookID uint `json:"book_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fav, created, err := s.favService.Add(c.UserContext(), currentUserID(c), req.BookID)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fav)
}

// RemoveFavourite handles DELETE /user/:id/favorites/:bookId
func (s *Server) RemoveFavourite(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}
	if err := s.favService.Remove(c.UserContext(), currentUserID(c), bookID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Favourite removed"})
}

// GetRatings handles GET /user/:id/ratings
func (s *Server) GetRatings(c *fiber.Ctx) error {
	ratings, err := s.ratingService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

// UpsertRating handles POST /user/:id/ratings. A second submission for the
// same book overwrites the first; the status distinguishes 201 from 200.
func (s *Server) UpsertRating(c *fiber.Ctx) error {
	var req struct {
		BookID uint                 `json:"book_id"`
		Stars  *int                 `json:"stars"`
		Status models.ReadingStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rating, created, err := s.ratingService.Upsert(c.UserContext(), service.UpsertRatingInput{
		UserID: currentUserID(c),
		BookID: req.BookID,
		Stars:  req.Stars,
		Status: req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(rating)
}

// GetRating handles GET /user/:id/ratings/:bookId
func (s *Server) GetRating(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}
	rating, err := s.ratingService.Get(c.UserContext(), currentUserID(c), bookID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

// DeleteRating handles DELETE /user/:id/ratings/:bookId
func (s *Server) DeleteRating(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}
	if err := s.ratingService.Delete(c.UserContext(), currentUserID(c), bookID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Rating removed"})
}
