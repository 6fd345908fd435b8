package server

import (
	"bookery/internal/models"
	"bookery/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and password are required"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// Login handles POST /login. The identity may be an email or a display name.
// An unknown identity is 404; a known identity with a wrong password is 401.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		EmailOrName string `json:"emailOrName"`
		Password    string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.EmailOrName, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.JSON(fiber.Map{"user": user})
}

// Logout handles POST /logout
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Token handles GET /token. It always answers 200: a missing, expired, or
// invalid token resolves to {"user": null}, never an error status.
func (s *Server) Token(c *fiber.Ctx) error {
	userID, ok := s.resolveUserID(c)
	if !ok {
		return c.JSON(fiber.Map{"user": nil})
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		// A deleted account or a store hiccup both resolve to anonymous.
		return c.JSON(fiber.Map{"user": nil})
	}

	return c.JSON(fiber.Map{"user": user})
}

// ChangePassword handles PUT /user/:id/password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Current and new passwords are required"))
	}

	if err := s.userService.ChangePassword(c.UserContext(), currentUserID(c),
		req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

// ChangeEmail handles PUT /user/:id/email
func (s *Server) ChangeEmail(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.ChangeEmail(c.UserContext(), currentUserID(c), req.Password, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
