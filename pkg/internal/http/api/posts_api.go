package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vinculo-social/vinculo/pkg/internal/http/exts"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

func listFeed(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)
	sort := c.Query("sort", services.FeedSortDate)

	var authorID *uuid.UUID
	if raw := c.Query("author"); len(raw) > 0 {
		id, err := services.ParseID(raw, "ID de usuario inválido")
		if err != nil {
			return err
		}
		authorID = &id
	}

	page, err := services.ListFeed(sort, authorID, take, offset)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

func listMyPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	take := c.QueryInt("take", 3)

	items, err := services.ListPostByAuthor(user.ID, take)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

func getPost(c *fiber.Ctx) error {
	id, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	item, err := services.GetPost(id)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title    string  `json:"title" validate:"required"`
		Message  string  `json:"message" validate:"required"`
		ImageURL *string `json:"image_url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user, models.Post{
		Title:    data.Title,
		Message:  data.Message,
		ImageURL: data.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	if err := services.DeletePost(id, user.ID, user.IsAdmin()); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Publicación eliminada exitosamente"})
}

func likePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	if err := services.LikePost(id, user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Me gusta agregado"})
}

func unlikePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := services.ParseID(c.Params("postId"), "ID de publicación inválido")
	if err != nil {
		return err
	}

	if err := services.UnlikePost(id, user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Me gusta eliminado"})
}
