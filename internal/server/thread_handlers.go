package server

import (
	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetThreads handles GET /threads (public, paginated)
func (s *Server) GetThreads(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	threads, err := s.threadService.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(threads)
}

// CreateThread handles POST /threads/create
func (s *Server) CreateThread(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thread, err := s.threadService.Create(c.UserContext(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// GetThread handles GET /threads/:id
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	thread, err := s.threadService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(thread)
}

// UpdateThread handles PUT /threads/:id
func (s *Server) UpdateThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	thread, err := s.threadService.Update(c.UserContext(), currentUserID(c), id, req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(thread)
}

// DeleteThread handles DELETE /threads/:id
func (s *Server) DeleteThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.threadService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Thread deleted"})
}

// CreateThreadComment handles POST /threads/:id/comments
func (s *Server) CreateThreadComment(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "id")
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

	comment, err := s.threadService.CreateComment(c.UserContext(), currentUserID(c), threadID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// FollowThread handles POST /threads/:id/follow
func (s *Server) FollowThread(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.threadService.Follow(c.UserContext(), currentUserID(c), threadID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subscribed"})
}

// UnfollowThread handles DELETE /threads/:id/follow
func (s *Server) UnfollowThread(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.threadService.Unfollow(c.UserContext(), currentUserID(c), threadID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unsubscribed"})
}

// AdminDeleteThread handles DELETE /admin/threads/:id
func (s *Server) AdminDeleteThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.threadService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Thread deleted"})
}

// AdminDeleteThreadComment handles DELETE /admin/threadComments/:id
func (s *Server) AdminDeleteThreadComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.threadService.DeleteComment(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
