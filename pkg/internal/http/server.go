package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/http/api"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Vinculo",
		AppName:               "Vinculo",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             10 * 1024 * 1024,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(LoadAccount)

	api.MapAPIs(app, "/api")

	return &App{app}
}

// ErrorHandler translates the core's failure taxonomy into status codes.
// Anything outside the taxonomy is an opaque infrastructure failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, fault.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, fault.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, fault.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, fault.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, fault.ErrConflict):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}
