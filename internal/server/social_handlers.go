package server

import (
	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFollows handles GET /user/:id/follows
func (s *Server) GetFollows(c *fiber.Ctx) error {
	follows, err := s.socialService.ListFollowing(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(follows)
}

// CreateFollow handles POST /user/:id/follows
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	var req struct {
		FollowingID uint `json:"following_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.socialService.Follow(c.UserContext(), currentUserID(c), req.FollowingID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Following"})
}

// DeleteFollow handles DELETE /user/:id/follows/:followingId
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "followingId")
	if err != nil {
		return nil
	}
	if err := s.socialService.Unfollow(c.UserContext(), currentUserID(c), followingID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

// GetBlocks handles GET /blocks
func (s *Server) GetBlocks(c *fiber.Ctx) error {
	blocks, err := s.socialService.ListBlocks(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blocks)
}

// CreateBlock handles POST /blocks
func (s *Server) CreateBlock(c *fiber.Ctx) error {
	var req struct {
		BlockedID uint `json:"blocked_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.socialService.Block(c.UserContext(), currentUserID(c), req.BlockedID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Blocked"})
}

// DeleteBlock handles DELETE /blocks/:blockedId. Only the caller's own block
// row is removed; a block placed by the other user stays in force.
func (s *Server) DeleteBlock(c *fiber.Ctx) error {
	blockedID, err := s.parseID(c, "blockedId")
	if err != nil {
		return nil
	}
	if err := s.socialService.Unblock(c.UserContext(), currentUserID(c), blockedID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unblocked"})
}
