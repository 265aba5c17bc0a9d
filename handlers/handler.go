// handlers/handler.go - Shared handler dependencies and error mapping
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teamchat/middleware"
	"teamchat/services"
	"teamchat/utils"
)

// Handler binds the domain services to HTTP.
type Handler struct {
	db         *gorm.DB
	tokens     *middleware.TokenAuth
	users      *services.UserService
	workspaces *services.WorkspaceService
	channels   *services.ChannelService
	members    *services.MemberService
}

func NewHandler(
	db *gorm.DB,
	tokens *middleware.TokenAuth,
	users *services.UserService,
	workspaces *services.WorkspaceService,
	channels *services.ChannelService,
	members *services.MemberService,
) *Handler {
	return &Handler{
		db:         db,
		tokens:     tokens,
		users:      users,
		workspaces: workspaces,
		channels:   channels,
		members:    members,
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

// domainError writes the response for a hard failure. Errors that are not
// DomainErrors are passed on to the app's error handler.
func domainError(c *fiber.Ctx, err error) error {
	var de *services.DomainError
	if !errors.As(err, &de) {
		return err
	}

	status := fiber.StatusInternalServerError
	switch de.Kind {
	case services.KindUnauthorized:
		status = fiber.StatusForbidden
		if _, ok := middleware.Caller(c).CallerIdentity(); !ok {
			status = fiber.StatusUnauthorized
		}
	case services.KindNotFound:
		status = fiber.StatusNotFound
	case services.KindInvalidJoinCode, services.KindInvalidArgument:
		status = fiber.StatusBadRequest
	case services.KindAlreadyMember:
		status = fiber.StatusConflict
	}

	return utils.Error(c, status, de.Error(), fiber.Map{"kind": de.Kind})
}

func invalidBody(c *fiber.Ctx) error {
	return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
}
