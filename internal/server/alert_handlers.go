package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetAlerts handles GET /alerts
func (s *Server) GetAlerts(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	alerts, err := s.alertService.ListAlerts(c.UserContext(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(alerts)
}

// MarkAlertRead handles PUT /alerts/:alertId
func (s *Server) MarkAlertRead(c *fiber.Ctx) error {
	alertID, err := s.parseID(c, "alertId")
	if err != nil {
		return nil
	}
	if err := s.alertService.MarkRead(c.UserContext(), currentUserID(c), alertID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Alert marked read"})
}

// DeleteAlert handles DELETE /alerts/:alertId
func (s *Server) DeleteAlert(c *fiber.Ctx) error {
	alertID, err := s.parseID(c, "alertId")
	if err != nil {
		return nil
	}
	if err := s.alertService.DeleteAlert(c.UserContext(), currentUserID(c), alertID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Alert deleted"})
}

// MarkAllAlertsRead handles POST /alerts/markAllRead
func (s *Server) MarkAllAlertsRead(c *fiber.Ctx) error {
	if err := s.alertService.MarkAllRead(c.UserContext(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All alerts marked read"})
}

// GetUnreadAlertCount handles GET /alerts/unreadCount
func (s *Server) GetUnreadAlertCount(c *fiber.Ctx) error {
	count, err := s.alertService.UnreadCount(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
