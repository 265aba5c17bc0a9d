// handlers/members.go - Membership HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teamchat/metrics"
	"teamchat/middleware"
	"teamchat/utils"
)

// ListMembers lists a workspace's members with profiles, for members only
// GET /api/workspaces/:id/members
func (h *Handler) ListMembers(c *fiber.Ctx) error {
	members, err := h.members.ListForWorkspace(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("member.listForWorkspace", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"members": members,
		"count":   len(members),
	})
}

// CurrentMember returns the caller's member row, or null
// GET /api/workspaces/:id/members/me
func (h *Handler) CurrentMember(c *fiber.Ctx) error {
	member, err := h.members.Current(c.UserContext(), middleware.Caller(c), c.Params("id"))
	metrics.ObserveOperation("member.current", err)
	if err != nil {
		return domainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"member": member})
}
