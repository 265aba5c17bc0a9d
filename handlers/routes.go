// handlers/routes.go - Route table
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"teamchat/database"
	"teamchat/utils"
)

// SetupRoutes registers the API under /api plus the health and metrics
// endpoints. authLimit, when non-nil, guards the /api/auth group.
func SetupRoutes(app *fiber.App, h *Handler, authLimit fiber.Handler) {
	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", h.tokens.Middleware())

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	if authLimit != nil {
		authGroup.Use(authLimit)
	}
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	api.Get("/users/me", h.CurrentUser)

	// Workspace routes
	ws := api.Group("/workspaces")
	ws.Post("/", h.CreateWorkspace)
	ws.Get("/", h.ListWorkspaces)
	ws.Get("/:id", h.GetWorkspace)
	ws.Patch("/:id", h.RenameWorkspace)
	ws.Delete("/:id", h.RemoveWorkspace)
	ws.Get("/:id/summary", h.GetWorkspaceSummary)
	ws.Post("/:id/join", h.JoinWorkspace)
	ws.Post("/:id/join-code", h.RotateJoinCode)
	ws.Get("/:id/channels", h.ListChannels)
	ws.Post("/:id/channels", h.CreateChannel)
	ws.Get("/:id/members", h.ListMembers)
	ws.Get("/:id/members/me", h.CurrentMember)

	// Channel routes
	ch := api.Group("/channels")
	ch.Get("/:id", h.GetChannel)
	ch.Patch("/:id", h.RenameChannel)
	ch.Delete("/:id", h.RemoveChannel)
}

// Health reports process and database liveness
// GET /health
func (h *Handler) Health(c *fiber.Ctx) error {
	status := "healthy"
	code := fiber.StatusOK
	if err := database.Ping(c.UserContext(), h.db); err != nil {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().Unix(),
	})
}

// ErrorHandler writes the JSON envelope for errors no handler answered.
// Internal messages are hidden when hideInternal is set.
func ErrorHandler(hideInternal bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if hideInternal && code == fiber.StatusInternalServerError {
			message = "An error occurred. Please try again later."
		}
		return utils.Error(c, code, message)
	}
}
