package serve

import (
	"github.com/gofiber/fiber/v2"
)

// NewApp creates a Fiber app that serves the contents of root as static files.
func NewApp(root string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // The caller logs its own startup message
	})

	app.Static("/", root, fiber.Static{
		Browse: true,
	})

	return app
}
