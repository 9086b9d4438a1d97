package api

import (
	"spendwatch/internal/api/handlers"
	"spendwatch/pkg/auth"
	"spendwatch/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	cardHandler *handlers.CardHandler,
	statementHandler *handlers.StatementHandler,
	dashboardHandler *handlers.DashboardHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	user := app.Group("/user")
	authGroup := user.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	cards := protected.Group("/cards")
	cards.Post("", cardHandler.CreateCard)
	cards.Get("", cardHandler.ListCards)
	cards.Delete("/:id", cardHandler.DeleteCard)
	cards.Get("/:id/transactions", statementHandler.ListTransactions)

	statements := protected.Group("/statements")
	statements.Post("/upload", statementHandler.UploadStatement)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/monthly", dashboardHandler.Monthly)
	dashboard.Get("/opportunity-cost", dashboardHandler.OpportunityCost)
	dashboard.Get("/advisory", dashboardHandler.Advisory)
	dashboard.Get("/report", dashboardHandler.Report)

	return app
}
