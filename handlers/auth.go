// handlers/auth.go - Account registration and token issuance
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teamchat/metrics"
	"teamchat/middleware"
	"teamchat/models"
	"teamchat/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns a token for it
// POST /api/auth/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.users.Register(c.UserContext(), req.Name, req.Email, req.Password, req.Image)
	metrics.ObserveOperation("auth.register", err)
	if err != nil {
		return domainError(c, err)
	}
	return h.tokenResponse(c, fiber.StatusCreated, user)
}

// Login exchanges credentials for a token
// POST /api/auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.users.Authenticate(c.UserContext(), req.Email, req.Password)
	metrics.ObserveOperation("auth.login", err)
	if err != nil {
		return domainError(c, err)
	}
	return h.tokenResponse(c, fiber.StatusOK, user)
}

// CurrentUser returns the caller's profile, or null
// GET /api/users/me
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	profile, err := h.users.Current(c.UserContext(), middleware.Caller(c))
	metrics.ObserveOperation("user.current", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": profile})
}

func (h *Handler) tokenResponse(c *fiber.Ctx, status int, user *models.User) error {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}
	return utils.Success(c, status, fiber.Map{
		"token": token,
		"user":  user.Profile(),
	})
}
