// handlers/channels.go - Channel HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teamchat/metrics"
	"teamchat/middleware"
	"teamchat/utils"
)

// CreateChannel adds a channel to a workspace (admin only)
// POST /api/workspaces/:id/channels
func (h *Handler) CreateChannel(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	id, err := h.channels.Create(c.UserContext(), middleware.Caller(c), c.Params("id"), req.Name)
	metrics.ObserveOperation("channel.create", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// ListChannels lists a workspace's channels for members
// GET /api/workspaces/:id/channels
func (h *Handler) ListChannels(c *fiber.Ctx) error {
	channels, err := h.channels.ListForWorkspace(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("channel.listForWorkspace", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"channels": channels,
		"count":    len(channels),
	})
}

// GetChannel returns a channel for members of its workspace, null otherwise
// GET /api/channels/:id
func (h *Handler) GetChannel(c *fiber.Ctx) error {
	channel, err := h.channels.GetByID(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("channel.getById", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"channel": channel})
}

// RenameChannel renames a channel (workspace admin only)
// PATCH /api/channels/:id
func (h *Handler) RenameChannel(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	id, err := h.channels.Rename(c.UserContext(), middleware.Caller(c), c.Params("id"), req.Name)
	metrics.ObserveOperation("channel.rename", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}

// RemoveChannel deletes a channel (workspace admin only)
// DELETE /api/channels/:id
func (h *Handler) RemoveChannel(c *fiber.Ctx) error {
	id, err := h.channels.Remove(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("channel.remove", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}
