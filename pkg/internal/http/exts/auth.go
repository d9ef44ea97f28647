package exts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	return nil
}

func EnsureAdministrator(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	if !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Se requieren permisos de administrador para acceder a este recurso")
	}
	return nil
}
