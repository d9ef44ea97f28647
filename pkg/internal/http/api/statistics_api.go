package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinculo-social/vinculo/pkg/internal/http/exts"
	"github.com/vinculo-social/vinculo/pkg/internal/services"
)

func statsInterval(c *fiber.Ctx) (services.StatsInterval, error) {
	if err := exts.EnsureAdministrator(c); err != nil {
		return services.StatsInterval{}, err
	}
	return services.ParseStatsInterval(c.Query("start"), c.Query("end"))
}

func getPostsByAuthorStats(c *fiber.Ctx) error {
	interval, err := statsInterval(c)
	if err != nil {
		return err
	}

	results, err := services.CountPostsByAuthor(interval)
	if err != nil {
		return err
	}

	return c.JSON(results)
}

func getCommentsByDayStats(c *fiber.Ctx) error {
	interval, err := statsInterval(c)
	if err != nil {
		return err
	}

	breakdown, err := services.CountCommentsByDay(interval)
	if err != nil {
		return err
	}

	return c.JSON(breakdown)
}

func getCommentsByPostStats(c *fiber.Ctx) error {
	interval, err := statsInterval(c)
	if err != nil {
		return err
	}

	results, err := services.CountCommentsByPost(interval)
	if err != nil {
		return err
	}

	return c.JSON(results)
}

func getSignupsByDayStats(c *fiber.Ctx) error {
	interval, err := statsInterval(c)
	if err != nil {
		return err
	}

	breakdown, err := services.CountSignupsByDay(interval)
	if err != nil {
		return err
	}

	return c.JSON(breakdown)
}
