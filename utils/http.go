// utils/http.go - JSON envelope helpers for fiber handlers
package utils

import (
	"github.com/gofiber/fiber/v2"
)

// JSON sends body with the given status.
func JSON(c *fiber.Ctx, status int, body fiber.Map) error {
	return c.Status(status).JSON(body)
}

// Success sends a {"success": true, ...} response with data merged in.
func Success(c *fiber.Ctx, status int, data fiber.Map) error {
	response := fiber.Map{"success": true}
	for k, v := range data {
		response[k] = v
	}
	return JSON(c, status, response)
}

// Error sends a {"success": false, "error": message} response. Extra
// fields are merged in.
func Error(c *fiber.Ctx, status int, message string, extra ...fiber.Map) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	for _, m := range extra {
		for k, v := range m {
			response[k] = v
		}
	}
	return JSON(c, status, response)
}
