package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/http/exts"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		FirstName   string    `json:"first_name" validate:"required"`
		LastName    string    `json:"last_name" validate:"required"`
		Email       string    `json:"email" validate:"required,email"`
		Username    string    `json:"username" validate:"required,min=3,max=32"`
		Password    string    `json:"password" validate:"required,min=8"`
		Birthday    time.Time `json:"birthday" validate:"required"`
		Description string    `json:"description" validate:"required"`
		AvatarURL   *string   `json:"avatar_url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(models.Account{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Username:    data.Username,
		Birthday:    data.Birthday,
		Description: data.Description,
		AvatarURL:   data.AvatarURL,
	}, data.Password)
	if err != nil {
		return err
	}

	token, err := services.IssueToken(account)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  account,
		"token": token,
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
		Password        string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.Authenticate(data.UsernameOrEmail, data.Password)
	if err != nil {
		return err
	}

	token, err := services.IssueToken(account)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":  account,
		"token": token,
	})
}

func doRefreshToken(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	token, err := services.IssueToken(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": token})
}
