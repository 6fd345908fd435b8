package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookery/internal/middleware"
	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "bookery_session"
	tokenIssuer       = "bookery-api"
	tokenAudience     = "bookery-client"
	tokenLifetime     = 7 * 24 * time.Hour
)

// AuthRequired returns the authentication middleware. The session token is
// read from the HTTP-only cookie first, then the Authorization header for
// non-browser clients.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.resolveUserID(c)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Authentication required"))
		}

		// A valid token is not enough: the account must still exist. Session
		// cookies outlive deleted accounts by up to a week.
		if _, err := s.userRepo.GetByID(c.UserContext(), userID); err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Authentication required"))
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// OwnerRequired ensures the authenticated user matches the :id path segment.
// Must be placed after AuthRequired.
func (s *Server) OwnerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathID, err := c.ParamsInt("id")
		if err != nil || pathID <= 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid ID"))
		}
		if currentUserID(c) != uint(pathID) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("You cannot act on another user's resources"))
		}
		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := s.isAdminByUserID(c.UserContext(), currentUserID(c))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// resolveUserID extracts and verifies the session token without enforcing it.
// The second return is false for a missing, malformed, expired, or otherwise
// invalid token; callers decide whether that is a 401 or an anonymous request.
func (s *Server) resolveUserID(c *fiber.Ctx) (uint, bool) {
	tokenString := c.Cookies(sessionCookieName)
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, false
	}
	return uint(userID), true
}

// generateToken creates a signed session token for the given user ID.
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// setSessionCookie issues the HTTP-only session cookie.
func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(tokenLifetime),
		HTTPOnly: true,
		Secure:   s.config.Env == "production" || s.config.Env == "prod",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// clearSessionCookie expires the session cookie.
func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
