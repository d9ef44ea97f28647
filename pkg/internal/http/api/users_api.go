package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/http/exts"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

func getMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	return c.JSON(user)
}

func getAccount(c *fiber.Ctx) error {
	id, err := services.ParseID(c.Params("userId"), "ID de usuario inválido")
	if err != nil {
		return err
	}

	profile, err := services.GetMinimalProfile(id)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

func updateMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Email       *string `json:"email" validate:"omitempty,email"`
		Username    *string `json:"username" validate:"omitempty,min=3,max=32"`
		Description *string `json:"description"`
		AvatarURL   *string `json:"avatar_url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.UpdateProfile(user.ID, services.ProfileChanges{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Username:    data.Username,
		Description: data.Description,
		AvatarURL:   data.AvatarURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(account)
}

func listAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAdministrator(c); err != nil {
		return err
	}

	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	items, count, err := services.ListAccounts(services.AccountFilter{
		Probe: c.Query("probe"),
		Role:  c.Query("role"),
	}, take, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func enableAccount(c *fiber.Ctx) error {
	return setAccountActive(c, true)
}

func disableAccount(c *fiber.Ctx) error {
	return setAccountActive(c, false)
}

func setAccountActive(c *fiber.Ctx, active bool) error {
	if err := exts.EnsureAdministrator(c); err != nil {
		return err
	}

	id, err := services.ParseID(c.Params("userId"), "ID de usuario inválido")
	if err != nil {
		return err
	}

	account, err := services.SetAccountActive(id, active)
	if err != nil {
		return err
	}

	return c.JSON(account)
}
