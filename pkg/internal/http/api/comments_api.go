package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/http/exts"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

func listComment(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	postID, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	items, count, err := services.ListCommentByPost(postID, take, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":  count,
		"data":   items,
		"limit":  take,
		"offset": offset,
	})
}

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	postID, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	var data struct {
		Message string `json:"message" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewComment(postID, user, data.Message)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func updateComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := services.ParseID(c.Params("commentId"), "ID de comentario inválido")
	if err != nil {
		return err
	}

	var data struct {
		Message string `json:"message" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditComment(id, user.ID, user.IsAdmin(), data.Message)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func deleteComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := services.ParseID(c.Params("commentId"), "ID de comentario inválido")
	if err != nil {
		return err
	}

	if err := services.DeleteComment(id, user.ID, user.IsAdmin()); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Comentario eliminado exitosamente"})
}
