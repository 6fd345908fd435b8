package server

import (
	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetConversations handles GET /messages
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.ListConversations(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(conversations)
}

// GetConversation handles GET /messages/:partnerId. Reading the thread also
// marks the partner's messages as read.
func (s *Server) GetConversation(c *fiber.Ctx) error {
	partnerID, err := s.parseID(c, "partnerId")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	messages, err := s.messageService.ListConversation(c.UserContext(), currentUserID(c), partnerID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

// SendMessage handles POST /messages/:partnerId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	partnerID, err := s.parseID(c, "partnerId")
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

	message, err := s.messageService.Send(c.UserContext(), currentUserID(c), partnerID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// EditMessage handles PUT /messages/:partnerId/:messageId
func (s *Server) EditMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "messageId")
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

	message, err := s.messageService.Edit(c.UserContext(), currentUserID(c), messageID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(message)
}

// DeleteMessage handles DELETE /messages/:partnerId/:messageId. The row is
// kept; its content becomes a placeholder.
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "messageId")
	if err != nil {
		return nil
	}

	message, err := s.messageService.Delete(c.UserContext(), currentUserID(c), messageID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(message)
}

// MarkConversationRead handles POST /messages/:partnerId/read
func (s *Server) MarkConversationRead(c *fiber.Ctx) error {
	partnerID, err := s.parseID(c, "partnerId")
	if err != nil {
		return nil
	}
	if err := s.messageService.MarkConversationRead(c.UserContext(), currentUserID(c), partnerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Conversation marked read"})
}

// GetUnreadMessageCount handles GET /messages/unreadCount
func (s *Server) GetUnreadMessageCount(c *fiber.Ctx) error {
	count, err := s.messageService.UnreadCount(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
