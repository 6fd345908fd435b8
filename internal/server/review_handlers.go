package server

import (
	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserReviews handles GET /user/:id/reviews
func (s *Server) GetUserReviews(c *fiber.Ctx) error {
	reviews, err := s.reviewService.ListByUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// UpsertReview handles POST /user/:id/reviews. Reviewing the same book again
// overwrites the content; the status distinguishes 201 from 200.
func (s *Server) UpsertReview(c *fiber.Ctx) error {
	var req struct {
		BookID  uint   `json:"book_id"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, created, err := s.reviewService.Upsert(c.UserContext(), currentUserID(c), req.BookID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(review)
}

// GetUserReview handles GET /user/:id/reviews/:bookId
func (s *Server) GetUserReview(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}
	review, err := s.reviewService.Get(c.UserContext(), currentUserID(c), bookID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// DeleteUserReview handles DELETE /user/:id/reviews/:bookId
func (s *Server) DeleteUserReview(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}
	if err := s.reviewService.DeleteOwn(c.UserContext(), currentUserID(c), bookID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}

// GetReviewComments handles GET /reviews/:id/comments
func (s *Server) GetReviewComments(c *fiber.Ctx) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	comments, err := s.reviewService.ListComments(c.UserContext(), reviewID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// CreateReviewComment handles POST /reviews/:id/comments
func (s *Server) CreateReviewComment(c *fiber.Ctx) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.reviewService.CreateComment(c.UserContext(), currentUserID(c), reviewID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteReviewComment handles DELETE /reviews/comments/:commentId
func (s *Server) DeleteReviewComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}
	if err := s.reviewService.DeleteComment(c.UserContext(), currentUserID(c), commentID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// ToggleReviewLike handles POST /reviews/:id/like. The request carries the
// desired polarity; posting the same polarity twice removes the row.
func (s *Server) ToggleReviewLike(c *fiber.Ctx) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsLike *bool `json:"is_like"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.IsLike == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_like is required"))
	}

	state, err := s.reviewService.ToggleLike(c.UserContext(), currentUserID(c), reviewID, *req.IsLike)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"state": state})
}

// AdminDeleteReview handles DELETE /admin/reviews/:id
func (s *Server) AdminDeleteReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.reviewService.DeleteByID(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}

// AdminDeleteReviewComment handles DELETE /admin/comments/:id
func (s *Server) AdminDeleteReviewComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.reviewService.DeleteComment(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
