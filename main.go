package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/dashboard"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/fees"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/payments"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/reports"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/students"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

// errorHandler returns every error as JSON with its status code.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Payment dates are calendar dates in the school's time zone.
	loc, err := time.LoadLocation("Africa/Abidjan")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Abidjan location, falling back to UTC: %v", err)
		time.Local = time.UTC
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName:      "GesEcolage",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	fees.SetupFeesRoutes(app)
	payments.SetupPaymentsRoutes(app)
	reports.SetupReportsRoutes(app)

	port := config.AppConfig.Port
	log.Printf("GesEcolage listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
