package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(app *fiber.App) {
	dashboardAPI := app.Group("/api/dashboard")
	dashboardAPI.Use(auth.AuthMiddleware)

	dashboardAPI.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboardStatsAPI returns dashboard statistics as JSON, computed from
// freshly loaded collections.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.GetStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	fees, err := database.GetFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class fees"})
	}
	payments, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	balances := services.ComputeAllBalances(students, fees, classFees, payments)
	stats := services.ComputeDashboardStats(payments, balances, time.Now())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
