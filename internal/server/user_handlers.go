package server

import (
	"io"

	"bookery/internal/cache"
	"bookery/internal/models"
	"bookery/internal/service"

	"github.com/gofiber/fiber/v2"
)

// publicProfile strips account fields from a user for unauthenticated viewers.
type publicProfile struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
	Title  string `json:"title"`
}

func toPublicProfile(u *models.User) publicProfile {
	return publicProfile{
		ID:     u.ID,
		Name:   u.Name,
		Bio:    u.Bio,
		Avatar: u.Avatar,
		Title:  u.Title,
	}
}

// GetUserProfile handles GET /users/:id (public)
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var cached models.User
	if cache.GetJSON(c.UserContext(), cache.UserKey(id), &cached) {
		return c.JSON(toPublicProfile(&cached))
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	cache.SetJSON(c.UserContext(), cache.UserKey(id), user, cache.UserTTL)

	return c.JSON(toPublicProfile(user))
}

// UpdateProfile handles PATCH /user/:id
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Name        *string `json:"name"`
		Bio         *string `json:"bio"`
		Avatar      *string `json:"avatar"`
		Title       *string `json:"title"`
		Gender      *string `json:"gender"`
		DateOfBirth *string `json:"date_of_birth"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:      userID,
		Name:        req.Name,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Title:       req.Title,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return respondError(c, err)
	}
	cache.InvalidateUser(c.UserContext(), userID)

	return c.JSON(fiber.Map{"user": user})
}

// DeleteAccount handles DELETE /user/:id
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := s.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return respondError(c, err)
	}
	cache.InvalidateUser(c.UserContext(), userID)
	s.clearSessionCookie(c)

	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// UploadAvatar handles POST /user/:id/avatar (multipart form, field "avatar")
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar file is required"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	url, err := s.store.Store(c.UserContext(), content, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondError(c, err)
	}

	userID := currentUserID(c)
	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: userID,
		Avatar: &url,
	})
	if err != nil {
		return respondError(c, err)
	}
	cache.InvalidateUser(c.UserContext(), userID)

	return c.JSON(fiber.Map{"user": user})
}

// AdminGetUsers handles GET /admin/users
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	users, err := s.userService.ListUsers(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// AdminCreateUser handles POST /admin/users
func (s *Server) AdminCreateUser(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		IsAdmin  bool   `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	if req.IsAdmin {
		user, err = s.userService.SetAdmin(c.UserContext(), user.ID, true)
		if err != nil {
			return respondError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// AdminUpdateUser handles PATCH /admin/users/:id
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name    *string `json:"name"`
		Bio     *string `json:"bio"`
		Title   *string `json:"title"`
		IsAdmin *bool   `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: id,
		Name:   req.Name,
		Bio:    req.Bio,
		Title:  req.Title,
	})
	if err != nil {
		return respondError(c, err)
	}
	if req.IsAdmin != nil {
		user, err = s.userService.SetAdmin(c.UserContext(), id, *req.IsAdmin)
		if err != nil {
			return respondError(c, err)
		}
	}
	cache.InvalidateUser(c.UserContext(), id)

	return c.JSON(user)
}

// AdminDeleteUser handles DELETE /admin/users/:id
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.userService.DeleteAccount(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	cache.InvalidateUser(c.UserContext(), id)

	return c.JSON(fiber.Map{"message": "User deleted"})
}
