package http

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(requestid.New())
	app.Use(recover.New())

	return app
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start http server: %v", err)
	}
}
