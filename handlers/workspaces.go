// handlers/workspaces.go - Workspace HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teamchat/metrics"
	"teamchat/middleware"
	"teamchat/utils"
)

type joinRequest struct {
	JoinCode string `json:"join_code"`
}

// ================== WORKSPACE CRUD ENDPOINTS ==================

// CreateWorkspace creates a workspace owned by the caller
// POST /api/workspaces
func (h *Handler) CreateWorkspace(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	id, err := h.workspaces.Create(c.UserContext(), middleware.Caller(c), req.Name)
	metrics.ObserveOperation("workspace.create", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, fiber.Map{"id": id})
}

// ListWorkspaces lists the caller's workspaces
// GET /api/workspaces
func (h *Handler) ListWorkspaces(c *fiber.Ctx) error {
	workspaces, err := h.workspaces.ListForCaller(c.UserContext(), middleware.Caller(c))
	metrics.ObserveOperation("workspace.listForCaller", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"workspaces": workspaces,
		"count":      len(workspaces),
	})
}

// GetWorkspace returns the full workspace for members, null otherwise
// GET /api/workspaces/:id
func (h *Handler) GetWorkspace(c *fiber.Ctx) error {
	workspace, err := h.workspaces.GetDetail(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("workspace.getDetail", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"workspace": workspace})
}

// GetWorkspaceSummary returns name and membership for join pages
// GET /api/workspaces/:id/summary
func (h *Handler) GetWorkspaceSummary(c *fiber.Ctx) error {
	summary, err := h.workspaces.GetSummary(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("workspace.getSummary", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"workspace": summary})
}

// RenameWorkspace renames a workspace (admin only)
// PATCH /api/workspaces/:id
func (h *Handler) RenameWorkspace(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	id, err := h.workspaces.Rename(c.UserContext(), middleware.Caller(c), c.Params("id"), req.Name)
	metrics.ObserveOperation("workspace.rename", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}

// RemoveWorkspace deletes a workspace with its members and channels (admin only)
// DELETE /api/workspaces/:id
func (h *Handler) RemoveWorkspace(c *fiber.Ctx) error {
	id, err := h.workspaces.Remove(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("workspace.remove", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}

// ================== JOIN CODE ENDPOINTS ==================

// JoinWorkspace joins the caller to a workspace with its join code
// POST /api/workspaces/:id/join
func (h *Handler) JoinWorkspace(c *fiber.Ctx) error {
	var req joinRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	id, err := h.workspaces.Join(c.UserContext(), middleware.Caller(c), c.Params("id"), req.JoinCode)
	metrics.ObserveOperation("workspace.join", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": id})
}

// RotateJoinCode replaces the workspace join code (admin only)
// POST /api/workspaces/:id/join-code
func (h *Handler) RotateJoinCode(c *fiber.Ctx) error {
	id := c.Params("id")
	code, err := h.workspaces.RotateJoinCode(c.UserContext(), middleware.Caller(c), id)
	metrics.ObserveOperation("workspace.rotateJoinCode", err)
	if err != nil {
		return domainError(c, err)
	}
	metrics.JoinCodeRotations.Inc()
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":        id,
		"join_code": code,
	})
}
