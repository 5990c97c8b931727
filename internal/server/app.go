package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// NewApp builds the fiber application serving manager:
//
//	POST   /api/games               create a game
//	GET    /api/games/:id           game state
//	DELETE /api/games/:id           drop a game
//	GET    /api/games/:id/moves     legal moves (?square=e2 for one piece)
//	POST   /api/games/:id/moves     play {"move": "e2e4"}
//	GET    /ws/games/:id            live game socket
func NewApp(cfg *config.Config, manager *GameManager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chessrules",
		DisableStartupMessage: cfg.Verbosity < 1,
	})

	app.Use(recover.New())
	if cfg.Verbosity >= 1 && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	h := NewHandler(manager, cfg)

	games := app.Group("/api/games")
	games.Post("/", h.CreateGame)
	games.Get("/:id", h.GetGame)
	games.Delete("/:id", h.DeleteGame)
	games.Get("/:id/moves", h.LegalMoves)
	games.Post("/:id/moves", h.MakeMove)

	app.Get("/ws/games/:id", h.RequireUpgrade, websocket.New(h.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
		Origins:         splitOrigins(cfg.Server.AllowOrigins),
	}))

	return app
}

func splitOrigins(list string) []string {
	var origins []string
	for _, o := range strings.Split(list, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
